package receipt

import "encoding/json"

// Receipt represents a submitted purchase document
type Receipt struct {
	Retailer     string     `json:"retailer"`
	PurchaseDate string     `json:"purchaseDate"`
	PurchaseTime string     `json:"purchaseTime"`
	Items        []LineItem `json:"items"`
	Total        string     `json:"total"`
}

// LineItem represents a single line on a receipt
type LineItem struct {
	ShortDescription string `json:"shortDescription"`
	Price            string `json:"price"`
}

// requiredFields are the keys every submitted document must carry
var requiredFields = []string{"retailer", "purchaseDate", "purchaseTime", "items", "total"}

// ParseReceipt decodes a raw JSON document into a Receipt. It fails with a
// ValidationError when the document is not a JSON object or is missing one
// or more required fields. A field that is present but of the wrong JSON
// type is kept as its zero value, so the affected scoring rule degrades to
// 0 instead of the submission being rejected.
func ParseReceipt(data []byte) (*Receipt, error) {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil || doc == nil {
		return nil, &ValidationError{}
	}

	var missing []string
	for _, field := range requiredFields {
		if _, ok := doc[field]; !ok {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		return nil, &ValidationError{Missing: missing}
	}

	var rc Receipt
	_ = json.Unmarshal(doc["retailer"], &rc.Retailer)
	_ = json.Unmarshal(doc["purchaseDate"], &rc.PurchaseDate)
	_ = json.Unmarshal(doc["purchaseTime"], &rc.PurchaseTime)
	_ = json.Unmarshal(doc["items"], &rc.Items)
	_ = json.Unmarshal(doc["total"], &rc.Total)
	return &rc, nil
}

// canonicalForm renders a receipt in a field-order-independent shape. Two
// submissions with the same field values always share a canonical form, no
// matter how the original JSON was laid out. Used only for dedup equality.
func canonicalForm(rc *Receipt) string {
	data, _ := json.Marshal(rc)
	return string(data)
}
