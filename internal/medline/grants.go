package medline

import "github.com/beevik/etree"

// parseGrants extracts the funding acknowledgements of one citation, each
// paired with the citation's pmid. Citations without an Article or a
// GrantList yield no rows.
func parseGrants(citation *etree.Element) []Grant {
	article := citation.FindElement("Article")
	if article == nil {
		return nil
	}
	grantList := article.FindElement("GrantList")
	if grantList == nil {
		return nil
	}
	pmid := parsePMID(citation)
	var grants []Grant
	for _, grant := range grantList.ChildElements() {
		g := Grant{PMID: pmid}
		if el := grant.FindElement("GrantID"); el != nil {
			g.GrantID = el.Text()
		}
		if el := grant.FindElement("Acronym"); el != nil {
			g.GrantAcronym = el.Text()
		}
		if el := grant.FindElement("Country"); el != nil {
			g.Country = el.Text()
		}
		if el := grant.FindElement("Agency"); el != nil {
			g.Agency = el.Text()
		}
		grants = append(grants, g)
	}
	return grants
}
