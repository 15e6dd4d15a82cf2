package model

import "time"

// ChallanType selects the challan variant being printed.
type ChallanType string

const (
	ChallanReceiving  ChallanType = "receiving"
	ChallanDelivering ChallanType = "delivering"
	ChallanPhotos     ChallanType = "photos"
)

// Valid reports whether the type is one of the known challan variants.
func (t ChallanType) Valid() bool {
	switch t {
	case ChallanReceiving, ChallanDelivering, ChallanPhotos:
		return true
	}
	return false
}

// ChallanCopyRecipients are the recipient roles printed on each generated
// challan, one table copy per role.
var ChallanCopyRecipients = []string{"Delivery Man", "End Party"}

// Challan is the persisted record of a generated challan document.
type Challan struct {
	ID          string
	Type        ChallanType
	OrderIDs    []string
	GeneratedAt time.Time
}

// ChallanRow is one order line inside a challan table copy.
type ChallanRow struct {
	OrderID         string
	Client          string
	Manufacturer    string
	Product         string
	Quantity        int
	PhotosDelivered int
}

// ChallanDocument is the fully resolved printable document.
type ChallanDocument struct {
	Challan
	BusinessName string
	Rows         []ChallanRow
}

// ShowPhotos reports whether the document carries the extra
// "Photos Delivered" column.
func (d ChallanDocument) ShowPhotos() bool {
	return d.Type == ChallanPhotos
}
