// Copyright 2024 The Notecard Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markdown

import (
	"fmt"

	"notecard.dev/markdown/locale"
)

// An AlertType is the kind of a GitHub-style alert block. Alerts are a
// distinct node kind produced by the parser, not the note-card rewrite
// of an ordinary block quote.
type AlertType int

const (
	AlertNote AlertType = iota
	AlertTip
	AlertImportant
	AlertWarning
	AlertCaution
)

func (t AlertType) cssClass() string {
	switch t {
	case AlertNote:
		return "markdown-alert-note"
	case AlertTip:
		return "markdown-alert-tip"
	case AlertImportant:
		return "markdown-alert-important"
	case AlertWarning:
		return "markdown-alert-warning"
	case AlertCaution:
		return "markdown-alert-caution"
	}
	panic(fmt.Sprintf("markdown: unknown alert type %d", int(t)))
}

// alertTitles maps each locale to the default alert titles, in
// AlertType order: Note, Tip, Important, Warning, Caution.
var alertTitles = map[locale.Locale][5]string{
	locale.EnUS: {"Note", "Tip", "Important", "Warning", "Caution"},
	locale.Es:   {"Nota", "Consejo", "Importante", "Advertencia", "Precaución"},
	locale.Fr:   {"Note", "Astuce", "Important", "Avertissement", "Attention"},
	locale.Ja:   {"メモ", "ヒント", "重要", "警告", "注意"},
	locale.Ko:   {"참고", "팁", "중요", "경고", "주의"},
	locale.PtBr: {"Nota", "Dica", "Importante", "Aviso", "Cuidado"},
	locale.Ru:   {"Примечание", "Совет", "Важно", "Предупреждение", "Осторожно"},
	locale.ZhCn: {"备注", "提示", "重要", "警告", "注意"},
	locale.ZhTw: {"备注", "提示", "重要", "警告", "注意"},
}

func init() {
	for _, l := range locale.All() {
		if _, ok := alertTitles[l]; !ok {
			panic(fmt.Sprintf("markdown: locale %v missing alert titles", l))
		}
	}
}

// defaultTitle returns the localized title used when an alert carries
// no explicit one.
func (t AlertType) defaultTitle(l locale.Locale) string {
	titles, ok := alertTitles[l]
	if !ok {
		panic(fmt.Sprintf("markdown: locale %v missing alert titles", l))
	}
	return titles[t]
}
