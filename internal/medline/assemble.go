package medline

import (
	"strings"

	"github.com/beevik/etree"
	"github.com/hyperifyio/medtab/internal/xmltext"
)

// parseArticleRecord flattens one MedlineCitation element into a Record.
// Citation-level fields (pmid, MeSH, keywords, chemicals, journal info,
// other identifiers) resolve even when the Article block is missing.
func parseArticleRecord(citation *etree.Element, opts Options) Record {
	var title, abstract, journal, pubdate, authors, affiliations string
	if article := citation.FindElement("Article"); article != nil {
		title = xmltext.NormalizeSpace(parseTitle(article, opts))
		abstract = xmltext.NormalizeSpace(parseAbstract(article, opts))
		authors, affiliations = parseAuthors(article)
		if j := article.FindElement("Journal"); j != nil {
			journal = journalName(j)
			pubdate = resolvePubDate(j, opts.YearInfoOnly)
		}
	}

	otherID, pmc := parseOtherIDs(citation)
	info := parseJournalInfo(citation)

	return Record{
		Title:            title,
		Abstract:         abstract,
		Journal:          journal,
		Author:           authors,
		Affiliation:      affiliations,
		PubDate:          pubdate,
		PMID:             parsePMID(citation),
		DOI:              parseDOI(citation),
		OtherID:          otherID,
		PMC:              pmc,
		MeshTerms:        parseMeshTerms(citation),
		Keywords:         parseKeywords(citation),
		PublicationTypes: parsePublicationTypes(citation),
		ChemicalList:     parseChemicalList(citation),
		MedlineTA:        info.MedlineTA,
		NLMUniqueID:      info.NLMUniqueID,
		ISSNLinking:      info.ISSNLinking,
		Country:          info.Country,
	}
}

func parseTitle(article *etree.Element, opts Options) string {
	title := article.FindElement("ArticleTitle")
	if title == nil {
		return ""
	}
	return strings.TrimSpace(xmltext.Flatten(title, opts.Subscript, opts.Superscript))
}

// parseAbstract flattens the abstract. A structured abstract (more than one
// AbstractText section) joins its sections with single spaces; with
// IncludeSections each section is preceded by its label attribute unless
// that label is UNASSIGNED. One section flattens alone, and a bare Abstract
// element without AbstractText children is flattened whole.
func parseAbstract(article *etree.Element, opts Options) string {
	sections := article.FindElements("Abstract/AbstractText")
	switch {
	case len(sections) > 1:
		labelAttr := "Label"
		if opts.NLMCategory {
			labelAttr = "NlmCategory"
		}
		var parts []string
		for _, section := range sections {
			if opts.IncludeSections {
				if label := section.SelectAttrValue(labelAttr, ""); label != "UNASSIGNED" {
					parts = append(parts, "\n", label)
				}
			}
			parts = append(parts, strings.TrimSpace(xmltext.Flatten(section, opts.Subscript, opts.Superscript)))
		}
		return strings.Join(parts, " ")
	case len(sections) == 1:
		return strings.TrimSpace(xmltext.Flatten(sections[0], opts.Subscript, opts.Superscript))
	}
	if abstract := article.FindElement("Abstract"); abstract != nil {
		return strings.TrimSpace(xmltext.Flatten(abstract, opts.Subscript, opts.Superscript))
	}
	return ""
}

// parseAuthors renders the author list as "Initials LastName; ..." and the
// affiliations as one line per author that has one. An author missing either
// name part still contributes the other.
func parseAuthors(article *etree.Element) (authors, affiliations string) {
	authorList := article.FindElement("AuthorList")
	if authorList == nil {
		return "", ""
	}
	var names, affils []string
	for _, author := range authorList.ChildElements() {
		var initials, lastName string
		if el := author.FindElement("Initials"); el != nil {
			initials = el.Text()
		}
		if el := author.FindElement("LastName"); el != nil {
			lastName = el.Text()
		}
		names = append(names, strings.TrimSpace(initials+" "+lastName))
		if el := author.FindElement("AffiliationInfo/Affiliation"); el != nil {
			if affil := xmltext.FlattenAffiliation(el); affil != "" {
				affils = append(affils, affil)
			}
		}
	}
	return strings.Join(names, "; "), strings.Join(affils, "\n")
}

// journalName joins the direct text nodes of every Title child of the
// Journal element. The name is kept verbatim, without space normalization.
func journalName(journal *etree.Element) string {
	var parts []string
	for _, title := range journal.FindElements("Title") {
		parts = append(parts, xmltext.TextNodes(title)...)
	}
	return strings.Join(parts, " ")
}
