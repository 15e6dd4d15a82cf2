package challan

import (
	"strings"
	"testing"
	"time"

	"github.com/printline/printdesk/internal/domain/model"
)

func sampleDocument(typ model.ChallanType) model.ChallanDocument {
	return model.ChallanDocument{
		Challan: model.Challan{
			ID:          "9f0c6f1e-0000-4000-8000-000000000001",
			Type:        typ,
			OrderIDs:    []string{"ORD001", "ORD002"},
			GeneratedAt: time.Date(2024, 5, 2, 12, 30, 0, 0, time.UTC),
		},
		BusinessName: "PrintLine Studio",
		Rows: []model.ChallanRow{
			{OrderID: "ORD001", Client: "Acme", Manufacturer: "M1", Product: "Photo Album", Quantity: 50, PhotosDelivered: 10},
			{OrderID: "ORD002", Client: "Borealis", Manufacturer: "M2", Product: "Photo Album", Quantity: 25},
		},
	}
}

func TestRenderProducesTwoCopies(t *testing.T) {
	out, err := Render(sampleDocument(model.ChallanDelivering))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	html := string(out)

	if got := strings.Count(html, `<section class="copy">`); got != 2 {
		t.Fatalf("expected 2 copies, got %d", got)
	}
	if !strings.Contains(html, "Copy: Delivery Man") || !strings.Contains(html, "Copy: End Party") {
		t.Fatal("expected one copy per recipient role")
	}
	if got := strings.Count(html, "<td>ORD001</td>"); got != 2 {
		t.Fatalf("expected ORD001 row in both copies, got %d", got)
	}
	if !strings.Contains(html, "PrintLine Studio") {
		t.Fatal("expected business name in header")
	}
	if !strings.Contains(html, "window.print()") {
		t.Fatal("expected print trigger")
	}
	if got := strings.Count(html, "Delivery Man Signature"); got != 2 {
		t.Fatalf("expected signature block per copy, got %d", got)
	}
}

func TestRenderPhotosColumnOnlyForPhotosType(t *testing.T) {
	photos, err := Render(sampleDocument(model.ChallanPhotos))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(string(photos), "<th>Photos Delivered</th>") {
		t.Fatal("photos challan must include the photos column")
	}
	if got := strings.Count(string(photos), "<td>10</td>"); got != 2 {
		t.Fatalf("expected photos count rendered in both copies, got %d", got)
	}

	receiving, err := Render(sampleDocument(model.ChallanReceiving))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(string(receiving), "Photos Delivered</th>") {
		t.Fatal("receiving challan must not include the photos column")
	}
}

func TestRenderEscapesFields(t *testing.T) {
	doc := sampleDocument(model.ChallanReceiving)
	doc.Rows[0].Client = `<script>alert("x")</script>`

	out, err := Render(doc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(string(out), `<script>alert`) {
		t.Fatal("row fields must be HTML-escaped")
	}
}

func TestTypeLabel(t *testing.T) {
	cases := []struct {
		typ  model.ChallanType
		want string
	}{
		{model.ChallanReceiving, "Receiving Challan"},
		{model.ChallanDelivering, "Delivering Challan"},
		{model.ChallanPhotos, "Photos Delivered Challan"},
		{"custom", "custom Challan"},
	}
	for _, tc := range cases {
		if got := typeLabel(tc.typ); got != tc.want {
			t.Fatalf("typeLabel(%q): expected %q, got %q", tc.typ, tc.want, got)
		}
	}
}
