package services

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/vncsmyrnk/votepage/internal/core/domain"
)

const (
	formPlaceholder  = "{formResults}"
	tablePlaceholder = "{table}"
)

var sanitizer = bluemonday.StrictPolicy()

func renderForm(params domain.Params) string {
	var b strings.Builder
	for _, value := range params.Values() {
		b.WriteString(sanitizer.Sanitize(value))
		b.WriteByte(' ')
	}
	return "<h4>Form Submission: " + b.String() + "</h4>"
}

func renderTable(records []domain.VoteRecord) (string, error) {
	if len(records) == 0 {
		return "<h4>DynamoDB:</h4>", nil
	}

	var b strings.Builder
	b.WriteString("<h4>DynamoDB:</h4><pre>")
	for _, record := range records {
		item, err := json.Marshal(record)
		if err != nil {
			return "", fmt.Errorf("failed to encode record %q: %w", record.ImageHash, err)
		}
		b.WriteString("<li>")
		b.Write(item)
		b.WriteString("</li>")
	}
	b.WriteString("</pre>")
	return b.String(), nil
}

type substitution struct {
	at          int
	placeholder string
	content     string
}

// fill replaces the first occurrence of each placeholder in template. Offsets
// come from the template alone, so rendered content is never searched again.
func fill(template, form, table string) string {
	var subs []substitution
	if i := strings.Index(template, formPlaceholder); i >= 0 {
		subs = append(subs, substitution{at: i, placeholder: formPlaceholder, content: form})
	}
	if i := strings.Index(template, tablePlaceholder); i >= 0 {
		subs = append(subs, substitution{at: i, placeholder: tablePlaceholder, content: table})
	}
	sort.Slice(subs, func(i, j int) bool { return subs[i].at < subs[j].at })

	var b strings.Builder
	last := 0
	for _, sub := range subs {
		b.WriteString(template[last:sub.at])
		b.WriteString(sub.content)
		last = sub.at + len(sub.placeholder)
	}
	b.WriteString(template[last:])
	return b.String()
}
