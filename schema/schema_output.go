package schema

// EnrichedFileDetail adds presentation data to a FileDetail.
type EnrichedFileDetail struct {
	Rank int `json:"rank"`
	FileDetail
}

// EnrichFiles adds a 1-based rank to a list of file details. The input order
// is preserved; callers rank before enriching.
func EnrichFiles(details []FileDetail) []EnrichedFileDetail {
	output := make([]EnrichedFileDetail, len(details))
	for i, d := range details {
		output[i] = EnrichedFileDetail{
			Rank:       i + 1,
			FileDetail: d,
		}
	}
	return output
}
