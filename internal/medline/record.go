package medline

// MissingValue fills every field except pmid on a tombstone record, so a
// consumer can tell "field absent on a live record" (empty string) from
// "record replaced by a deletion notice". Common dataframe tooling reads it
// back as NaN.
const MissingValue = "NA"

// Record is one MEDLINE citation flattened into a tabular row. All fields
// are strings; aggregate fields (authors, MeSH terms, keywords, chemicals,
// publication types, other identifiers) are "; "-joined, affiliations are
// newline-joined. Delete marks tombstone records emitted for deletion
// notices.
type Record struct {
	Title            string `json:"title"`
	Abstract         string `json:"abstract"`
	Journal          string `json:"journal"`
	Author           string `json:"author"`
	Affiliation      string `json:"affiliation"`
	PubDate          string `json:"pubdate"`
	PMID             string `json:"pmid"`
	DOI              string `json:"doi"`
	OtherID          string `json:"other_id"`
	PMC              string `json:"pmc"`
	MeshTerms        string `json:"mesh_terms"`
	Keywords         string `json:"keywords"`
	PublicationTypes string `json:"publication_types"`
	ChemicalList     string `json:"chemical_list"`
	MedlineTA        string `json:"medline_ta"`
	NLMUniqueID      string `json:"nlm_unique_id"`
	ISSNLinking      string `json:"issn_linking"`
	Country          string `json:"country"`
	Delete           bool   `json:"delete"`
}

// Grant is one funding acknowledgement attached to a citation. Grants are
// independent of Record: the pmid is copied by value, never referenced.
type Grant struct {
	PMID         string `json:"pmid"`
	GrantID      string `json:"grant_id"`
	GrantAcronym string `json:"grant_acronym"`
	Country      string `json:"country"`
	Agency       string `json:"agency"`
}

// JournalInfo carries the MedlineJournalInfo fields merged into a Record.
type JournalInfo struct {
	MedlineTA   string `json:"medline_ta"`
	NLMUniqueID string `json:"nlm_unique_id"`
	ISSNLinking string `json:"issn_linking"`
	Country     string `json:"country"`
}

// deletedRecord builds the tombstone for one deletion notice.
func deletedRecord(pmid string) Record {
	return Record{
		Title:            MissingValue,
		Abstract:         MissingValue,
		Journal:          MissingValue,
		Author:           MissingValue,
		Affiliation:      MissingValue,
		PubDate:          MissingValue,
		PMID:             pmid,
		DOI:              MissingValue,
		OtherID:          MissingValue,
		PMC:              MissingValue,
		MeshTerms:        MissingValue,
		Keywords:         MissingValue,
		PublicationTypes: MissingValue,
		ChemicalList:     MissingValue,
		MedlineTA:        MissingValue,
		NLMUniqueID:      MissingValue,
		ISSNLinking:      MissingValue,
		Country:          MissingValue,
		Delete:           true,
	}
}
