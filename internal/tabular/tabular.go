package tabular

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/hyperifyio/medtab/internal/medline"
)

// recordHeader fixes the CSV column order for citation records. Consumers
// key on these names; reordering is a breaking change.
var recordHeader = []string{
	"title", "abstract", "journal", "author", "affiliation", "pubdate",
	"pmid", "doi", "other_id", "pmc", "mesh_terms", "keywords",
	"publication_types", "chemical_list", "medline_ta", "nlm_unique_id",
	"issn_linking", "country", "delete",
}

var grantHeader = []string{"pmid", "grant_id", "grant_acronym", "country", "agency"}

// WriteRecordsCSV writes the records as CSV with a header row. Row order
// follows the slice; the writer never reorders.
func WriteRecordsCSV(w io.Writer, records []medline.Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(recordHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, r := range records {
		row := []string{
			r.Title, r.Abstract, r.Journal, r.Author, r.Affiliation,
			r.PubDate, r.PMID, r.DOI, r.OtherID, r.PMC, r.MeshTerms,
			r.Keywords, r.PublicationTypes, r.ChemicalList, r.MedlineTA,
			r.NLMUniqueID, r.ISSNLinking, r.Country,
			strconv.FormatBool(r.Delete),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}

// WriteGrantsCSV writes the grants as CSV with a header row.
func WriteGrantsCSV(w io.Writer, grants []medline.Grant) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(grantHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, g := range grants {
		row := []string{g.PMID, g.GrantID, g.GrantAcronym, g.Country, g.Agency}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}

// WriteRecordsJSONL writes one JSON object per line, keys per the Record
// struct tags.
func WriteRecordsJSONL(w io.Writer, records []medline.Record) error {
	enc := json.NewEncoder(w)
	for _, r := range records {
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("write jsonl record: %w", err)
		}
	}
	return nil
}

// WriteGrantsJSONL writes one JSON object per line, keys per the Grant
// struct tags.
func WriteGrantsJSONL(w io.Writer, grants []medline.Grant) error {
	enc := json.NewEncoder(w)
	for _, g := range grants {
		if err := enc.Encode(g); err != nil {
			return fmt.Errorf("write jsonl record: %w", err)
		}
	}
	return nil
}
