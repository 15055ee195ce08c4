package registration

// Row is one ledger entry in the registration spreadsheet. EventDate is kept
// as the raw display-formatted string; matching is string equality on purpose.
type Row struct {
	Timestamp string
	EventName string
	EventDate string
}
