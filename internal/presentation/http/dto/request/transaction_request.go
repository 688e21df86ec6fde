package request

// UpdateTransactionRequest patches the session's transaction field by field.
// All values arrive as form text; numeric fields are coerced server-side with
// parse failures becoming 0. The sequence number is not settable - it is
// regenerated automatically at export time.
type UpdateTransactionRequest struct {
	Shift        *string `json:"shift"`
	Date         *string `json:"date"`
	Time         *string `json:"time"`
	PumpID       *string `json:"pump_id"`
	ProductName  *string `json:"product_name"`
	UnitPrice    *string `json:"unit_price"`
	VolumeLiters *string `json:"volume_liters"`
	CashAmount   *string `json:"cash_amount"`
	OperatorName *string `json:"operator_name"`
	PlateNumber  *string `json:"plate_number"`
}

// SelectStationRequest sets the session's active station profile.
type SelectStationRequest struct {
	StationID string `json:"station_id" binding:"required"`
}
