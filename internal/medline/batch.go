package medline

import (
	"sync"

	"github.com/beevik/etree"
)

// Citations returns every MedlineCitation element in document order.
// Documents wrapped in MedlineCitationSet are matched first; otherwise any
// MedlineCitation descendant counts, which covers PubmedArticleSet exports.
func Citations(doc *etree.Document) []*etree.Element {
	citations := doc.FindElements("//MedlineCitationSet/MedlineCitation")
	if len(citations) == 0 {
		citations = doc.FindElements("//MedlineCitation")
	}
	return citations
}

// deletedPMIDs lists the text of every DeleteCitation notice in the document.
func deletedPMIDs(doc *etree.Document) []string {
	var pmids []string
	for _, el := range doc.FindElements("//DeleteCitation/PMID") {
		pmids = append(pmids, el.Text())
	}
	return pmids
}

// Parse flattens every citation in the document into one Record each, in
// document order, followed by one tombstone per deletion notice.
func Parse(doc *etree.Document, opts Options) []Record {
	citations := Citations(doc)
	records := make([]Record, len(citations))
	if opts.Workers > 1 && len(citations) > 1 {
		parseParallel(citations, opts, records)
	} else {
		for i, citation := range citations {
			records[i] = parseArticleRecord(citation, opts)
		}
	}
	for _, pmid := range deletedPMIDs(doc) {
		records = append(records, deletedRecord(pmid))
	}
	return records
}

// parseParallel flattens citations concurrently, at most opts.Workers at a
// time. Each goroutine writes to its own slot of records, so the slice keeps
// document order without sorting.
func parseParallel(citations []*etree.Element, opts Options, records []Record) {
	limiter := make(chan struct{}, opts.Workers)
	var wg sync.WaitGroup
	for i, citation := range citations {
		i, citation := i, citation
		wg.Add(1)
		limiter <- struct{}{}
		go func() {
			defer wg.Done()
			defer func() { <-limiter }()
			records[i] = parseArticleRecord(citation, opts)
		}()
	}
	wg.Wait()
}

// ParseGrants flattens the funding acknowledgements of every citation,
// keeping citation order and, within a citation, grant document order.
func ParseGrants(doc *etree.Document) []Grant {
	var grants []Grant
	for _, citation := range Citations(doc) {
		grants = append(grants, parseGrants(citation)...)
	}
	return grants
}
