package medline

import (
	"testing"

	"github.com/beevik/etree"
)

func mustCitation(t *testing.T, xml string) *etree.Element {
	t.Helper()
	doc := etree.NewDocument()
	if err := doc.ReadFromString(xml); err != nil {
		t.Fatalf("parse fixture: %v", err)
	}
	citation := doc.FindElement("//MedlineCitation")
	if citation == nil {
		t.Fatalf("fixture has no MedlineCitation element")
	}
	return citation
}

func TestParsePMID(t *testing.T) {
	citation := mustCitation(t, `<MedlineCitation><PMID Version="1">12345678</PMID></MedlineCitation>`)
	if got := parsePMID(citation); got != "12345678" {
		t.Fatalf("pmid = %q, want \"12345678\"", got)
	}
	citation = mustCitation(t, `<MedlineCitation><Article/></MedlineCitation>`)
	if got := parsePMID(citation); got != "" {
		t.Fatalf("pmid without element = %q, want empty", got)
	}
}

func TestParseDOI_PicksDOIEntry(t *testing.T) {
	citation := mustCitation(t, `<MedlineCitation><Article>
		<ELocationID EIdType="pii">S0000</ELocationID>
		<ELocationID EIdType="doi"> 10.1000/xyz123 </ELocationID>
	</Article></MedlineCitation>`)
	if got := parseDOI(citation); got != "10.1000/xyz123" {
		t.Fatalf("doi = %q, want \"10.1000/xyz123\"", got)
	}
}

func TestParseDOI_LaterNonDOIEntryClearsMatch(t *testing.T) {
	citation := mustCitation(t, `<MedlineCitation><Article>
		<ELocationID EIdType="doi">10.1000/xyz123</ELocationID>
		<ELocationID EIdType="pii">S0000</ELocationID>
	</Article></MedlineCitation>`)
	if got := parseDOI(citation); got != "" {
		t.Fatalf("doi = %q, want empty when a pii entry follows", got)
	}
}

func TestParseDOI_NoArticle(t *testing.T) {
	citation := mustCitation(t, `<MedlineCitation><PMID>1</PMID></MedlineCitation>`)
	if got := parseDOI(citation); got != "" {
		t.Fatalf("doi without article = %q, want empty", got)
	}
}

func TestParseOtherIDs_SplitsPMC(t *testing.T) {
	citation := mustCitation(t, `<MedlineCitation>
		<OtherID Source="NLM">NLM123</OtherID>
		<OtherID Source="NLM">PMC1234567</OtherID>
		<OtherID Source="KIE">KIE/55</OtherID>
		<OtherID Source="NLM">PMC7654321</OtherID>
	</MedlineCitation>`)

	otherID, pmc := parseOtherIDs(citation)
	if pmc != "PMC7654321" {
		t.Fatalf("pmc = %q, want last PMC entry", pmc)
	}
	if otherID != "NLM123; KIE/55" {
		t.Fatalf("other_id = %q, want \"NLM123; KIE/55\"", otherID)
	}
}

func TestParseOtherIDs_Empty(t *testing.T) {
	citation := mustCitation(t, `<MedlineCitation><PMID>1</PMID></MedlineCitation>`)
	otherID, pmc := parseOtherIDs(citation)
	if otherID != "" || pmc != "" {
		t.Fatalf("other ids = %q/%q, want empty", otherID, pmc)
	}
}

func TestParseMeshTerms_JoinsDescriptors(t *testing.T) {
	citation := mustCitation(t, `<MedlineCitation><MeshHeadingList>
		<MeshHeading><DescriptorName UI="D000001">Calcimycin</DescriptorName></MeshHeading>
		<MeshHeading>
			<DescriptorName UI="D000818">Animals</DescriptorName>
			<QualifierName UI="Q000187">drug effects</QualifierName>
		</MeshHeading>
	</MeshHeadingList></MedlineCitation>`)

	want := "D000001:Calcimycin; D000818:Animals"
	if got := parseMeshTerms(citation); got != want {
		t.Fatalf("mesh_terms = %q, want %q", got, want)
	}
}

func TestParseMeshTerms_AbsentListIsEmpty(t *testing.T) {
	citation := mustCitation(t, `<MedlineCitation><PMID>1</PMID></MedlineCitation>`)
	if got := parseMeshTerms(citation); got != "" {
		t.Fatalf("mesh_terms = %q, want empty", got)
	}
}

func TestParsePublicationTypes(t *testing.T) {
	citation := mustCitation(t, `<MedlineCitation><Article><PublicationTypeList>
		<PublicationType UI="D016428">Journal Article</PublicationType>
		<PublicationType UI="D013485">Research Support, Non-U.S. Gov't </PublicationType>
	</PublicationTypeList></Article></MedlineCitation>`)

	want := "D016428:Journal Article; D013485:Research Support, Non-U.S. Gov't"
	if got := parsePublicationTypes(citation); got != want {
		t.Fatalf("publication_types = %q, want %q", got, want)
	}
}

func TestParseChemicalList(t *testing.T) {
	citation := mustCitation(t, `<MedlineCitation><ChemicalList>
		<Chemical>
			<RegistryNumber>37H9VM9WZL</RegistryNumber>
			<NameOfSubstance UI="D000001">Calcimycin </NameOfSubstance>
		</Chemical>
		<Chemical><RegistryNumber>0</RegistryNumber></Chemical>
	</ChemicalList></MedlineCitation>`)

	if got := parseChemicalList(citation); got != "D000001:Calcimycin" {
		t.Fatalf("chemical_list = %q, want \"D000001:Calcimycin\"", got)
	}
}

func TestParseKeywords_SkipsEmptyEntries(t *testing.T) {
	citation := mustCitation(t, `<MedlineCitation><KeywordList Owner="NOTNLM">
		<Keyword MajorTopicYN="N">sepsis</Keyword>
		<Keyword MajorTopicYN="N"></Keyword>
		<Keyword MajorTopicYN="Y">intensive care</Keyword>
	</KeywordList></MedlineCitation>`)

	if got := parseKeywords(citation); got != "sepsis; intensive care" {
		t.Fatalf("keywords = %q, want \"sepsis; intensive care\"", got)
	}
}

func TestParseJournalInfo(t *testing.T) {
	citation := mustCitation(t, `<MedlineCitation><MedlineJournalInfo>
		<Country>Finland</Country>
		<MedlineTA> Acta Physiol Scand </MedlineTA>
		<NlmUniqueID>0370362</NlmUniqueID>
		<ISSNLinking>0001-6772</ISSNLinking>
	</MedlineJournalInfo></MedlineCitation>`)

	info := parseJournalInfo(citation)
	if info.MedlineTA != "Acta Physiol Scand" {
		t.Fatalf("medline_ta = %q, want trimmed abbreviation", info.MedlineTA)
	}
	if info.NLMUniqueID != "0370362" || info.ISSNLinking != "0001-6772" || info.Country != "Finland" {
		t.Fatalf("journal info = %+v", info)
	}
}

func TestParseJournalInfo_Absent(t *testing.T) {
	citation := mustCitation(t, `<MedlineCitation><PMID>1</PMID></MedlineCitation>`)
	if info := parseJournalInfo(citation); info != (JournalInfo{}) {
		t.Fatalf("journal info = %+v, want zero value", info)
	}
}
