package completion

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const widgetInitScript = "https://app.leeloo.ai/init.js"

// WidgetBlock renders the hidden container the embedded CRM widget attaches
// itself to, keyed by the lead-routing hash.
func WidgetBlock(hash string) string {
	return fmt.Sprintf(
		`<div class="crm-widget" style="display:none"><div class="wepster-hash-%s"></div></div>`,
		hash)
}

// InjectWidget appends the widget container and its loader script to the
// host page markup and returns the rewritten document.
func InjectWidget(markup, hash string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return "", err
	}

	body := doc.Find("body")
	body.AppendHtml(WidgetBlock(hash))
	body.AppendHtml(fmt.Sprintf(`<script src=%q async></script>`, widgetInitScript))

	// The container starts hidden; the widget is shown once mounted.
	doc.Find(".crm-widget").RemoveAttr("style")

	return doc.Html()
}
