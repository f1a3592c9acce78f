package medline

import (
	"strings"

	"github.com/beevik/etree"
)

// parsePMID returns the text of the citation's PMID element.
func parsePMID(citation *etree.Element) string {
	pmid := citation.FindElement("PMID")
	if pmid == nil {
		return ""
	}
	return pmid.Text()
}

// parseDOI returns the DOI recorded under Article/ELocationID. Every
// ELocationID reassigns the result, so a non-doi entry appearing after the
// doi entry clears it and the field comes back empty. Suspect behavior,
// but published datasets were flattened exactly this way; keep it.
func parseDOI(citation *etree.Element) string {
	article := citation.FindElement("Article")
	if article == nil {
		return ""
	}
	doi := ""
	for _, e := range article.FindElements("ELocationID") {
		if e.SelectAttrValue("EIdType", "") == "doi" {
			doi = strings.TrimSpace(e.Text())
		} else {
			doi = ""
		}
	}
	return doi
}

// parseOtherIDs splits the citation's OtherID entries into the last one
// mentioning PMC and a "; "-joined list of the rest.
func parseOtherIDs(citation *etree.Element) (otherID, pmc string) {
	var others []string
	for _, oid := range citation.FindElements("OtherID") {
		text := oid.Text()
		if strings.Contains(text, "PMC") {
			pmc = text
		} else {
			others = append(others, text)
		}
	}
	return strings.Join(others, "; "), pmc
}

// parseMeshTerms joins the MeSH descriptors as "UI:term; UI:term; ...".
// Qualifier names are not carried over.
func parseMeshTerms(citation *etree.Element) string {
	meshList := citation.FindElement("MeshHeadingList")
	if meshList == nil {
		return ""
	}
	var terms []string
	for _, heading := range meshList.ChildElements() {
		descriptor := heading.FindElement("DescriptorName")
		if descriptor == nil {
			continue
		}
		terms = append(terms, descriptor.SelectAttrValue("UI", "")+":"+descriptor.Text())
	}
	return strings.Join(terms, "; ")
}

// parsePublicationTypes joins Article/PublicationTypeList entries as
// "UI:type; UI:type; ...".
func parsePublicationTypes(citation *etree.Element) string {
	typeList := citation.FindElement("Article/PublicationTypeList")
	if typeList == nil {
		return ""
	}
	var types []string
	for _, pubType := range typeList.ChildElements() {
		types = append(types, pubType.SelectAttrValue("UI", "")+":"+strings.TrimSpace(pubType.Text()))
	}
	return strings.Join(types, "; ")
}

// parseChemicalList joins ChemicalList substances as "UI:name; UI:name; ...".
func parseChemicalList(citation *etree.Element) string {
	chemicalList := citation.FindElement("ChemicalList")
	if chemicalList == nil {
		return ""
	}
	var chemicals []string
	for _, chemical := range chemicalList.FindElements("Chemical") {
		substance := chemical.FindElement("NameOfSubstance")
		if substance == nil {
			continue
		}
		chemicals = append(chemicals, substance.SelectAttrValue("UI", "")+":"+strings.TrimSpace(substance.Text()))
	}
	return strings.Join(chemicals, "; ")
}

// parseKeywords joins the entries of the citation's first KeywordList.
// Keywords without text are skipped.
func parseKeywords(citation *etree.Element) string {
	keywordList := citation.FindElement("KeywordList")
	if keywordList == nil {
		return ""
	}
	var keywords []string
	for _, keyword := range keywordList.FindElements("Keyword") {
		if text := keyword.Text(); text != "" {
			keywords = append(keywords, text)
		}
	}
	return strings.Join(keywords, "; ")
}

// parseJournalInfo reads the MedlineJournalInfo block. Only the journal
// title abbreviation is trimmed; the registry fields are kept verbatim.
func parseJournalInfo(citation *etree.Element) JournalInfo {
	var info JournalInfo
	journalInfo := citation.FindElement("MedlineJournalInfo")
	if journalInfo == nil {
		return info
	}
	if el := journalInfo.FindElement("MedlineTA"); el != nil {
		info.MedlineTA = strings.TrimSpace(el.Text())
	}
	if el := journalInfo.FindElement("NlmUniqueID"); el != nil {
		info.NLMUniqueID = el.Text()
	}
	if el := journalInfo.FindElement("ISSNLinking"); el != nil {
		info.ISSNLinking = el.Text()
	}
	if el := journalInfo.FindElement("Country"); el != nil {
		info.Country = el.Text()
	}
	return info
}
