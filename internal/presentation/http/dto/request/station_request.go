package request

// SaveStationRequest is the payload for creating or updating a station
// profile. Fields are pointers so an omitted field means "leave unchanged"
// rather than "blank this column". Address and footer note carry literal
// newlines; the footer note contains one {subsidi} placeholder.
type SaveStationRequest struct {
	Name         *string `json:"name"`
	Address      *string `json:"address"`
	FooterNote   *string `json:"footer_note"`
	ReceiptWidth *int    `json:"receipt_width"`
}
