// Package challan renders generated challan documents as printable HTML.
// The document carries two copies of the same batch table, one per
// recipient role, and fires the platform print action when opened.
package challan

import (
	"bytes"
	"html/template"
	"time"

	"github.com/printline/printdesk/internal/domain/model"
)

func newTemplate() *template.Template {
	funcs := template.FuncMap{
		"formatTime": formatTime,
		"typeLabel":  typeLabel,
	}
	return template.Must(template.New("challan").Funcs(funcs).Parse(documentTemplate))
}

var documentTmpl = newTemplate()

type documentView struct {
	model.ChallanDocument
	Copies []string
}

// Render produces the printable HTML for a generated challan.
func Render(doc model.ChallanDocument) ([]byte, error) {
	var buf bytes.Buffer
	view := documentView{ChallanDocument: doc, Copies: model.ChallanCopyRecipients}
	if err := documentTmpl.Execute(&buf, view); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func formatTime(value time.Time) string {
	return value.Format("2006-01-02 15:04")
}

func typeLabel(typ model.ChallanType) string {
	switch typ {
	case model.ChallanReceiving:
		return "Receiving Challan"
	case model.ChallanDelivering:
		return "Delivering Challan"
	case model.ChallanPhotos:
		return "Photos Delivered Challan"
	}
	return string(typ) + " Challan"
}

const documentTemplate = `<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <title>{{typeLabel .Type}} — {{.BusinessName}}</title>
  <style>
    body {
      margin: 24px;
      font-family: "Georgia", serif;
      color: #222;
    }
    section.copy {
      border: 1px solid #444;
      padding: 16px 20px;
      margin-bottom: 28px;
      page-break-inside: avoid;
    }
    header h1 {
      margin: 0;
      font-size: 22px;
    }
    header p {
      margin: 4px 0 0 0;
      font-size: 13px;
      color: #555;
    }
    .recipient {
      margin: 12px 0;
      font-size: 14px;
      font-weight: bold;
      text-transform: uppercase;
    }
    table {
      width: 100%;
      border-collapse: collapse;
      font-size: 13px;
    }
    th, td {
      border: 1px solid #666;
      padding: 6px 8px;
      text-align: left;
    }
    .signatures {
      display: flex;
      justify-content: space-between;
      margin-top: 48px;
      font-size: 13px;
    }
    .signatures span {
      border-top: 1px solid #222;
      padding-top: 4px;
      width: 180px;
      text-align: center;
    }
  </style>
</head>
<body onload="window.print()">
{{range .Copies}}
  <section class="copy">
    <header>
      <h1>{{$.BusinessName}}</h1>
      <p>{{typeLabel $.Type}} · {{formatTime $.GeneratedAt}} · Ref {{$.ID}}</p>
    </header>
    <p class="recipient">Copy: {{.}}</p>
    <table>
      <thead>
        <tr>
          <th>Order ID</th>
          <th>Client</th>
          <th>Manufacturer</th>
          <th>Product</th>
          <th>Quantity</th>
          {{- if $.ShowPhotos}}
          <th>Photos Delivered</th>
          {{- end}}
        </tr>
      </thead>
      <tbody>
        {{- range $.Rows}}
        <tr>
          <td>{{.OrderID}}</td>
          <td>{{.Client}}</td>
          <td>{{.Manufacturer}}</td>
          <td>{{.Product}}</td>
          <td>{{.Quantity}}</td>
          {{- if $.ShowPhotos}}
          <td>{{.PhotosDelivered}}</td>
          {{- end}}
        </tr>
        {{- end}}
      </tbody>
    </table>
    <div class="signatures">
      <span>Delivery Man Signature</span>
      <span>End Party Signature</span>
    </div>
  </section>
{{end}}
</body>
</html>
`
