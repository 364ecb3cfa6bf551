// Package classify partitions document elements into named buckets by
// lexical content.
//
// A classification run takes an ordered list of [KeywordSet] values. For
// each element a representative string is extracted — the payload of a
// text element, or the first materialized grid row of a table — and the
// keyword sets are tested in order. The element lands in the bucket of
// the first set containing a matching keyword (case-insensitive substring,
// Unicode case folding), or in the [Unclassified] bucket when nothing
// matches or nothing could be extracted.
//
//	sets := []classify.KeywordSet{
//		{Name: "financial", Keywords: []string{"revenue", "income", "margin"}},
//		{Name: "operational", Keywords: []string{"subscribers", "churn"}},
//	}
//	result, err := classify.Classify(ctx, elements, sets)
//	financial := result.Bucket("financial")
//
// # Failure Handling
//
// Grid materialization may fail or overrun the caller's context budget.
// Such elements are routed to [Unclassified] and the failure is recorded
// in [Result].Failures (and logged when a logger is configured via
// [WithLogger]); it never propagates to the caller. Only malformed
// keyword-set lists — empty or duplicate names, or a set claiming the
// reserved [Unclassified] name — fail the call itself.
//
// # Rule Files
//
// [RulesFromYAML] loads an ordered keyword-set list from YAML, keeping
// bucket order exactly as written in the file:
//
//	- name: financial
//	  keywords: [revenue, income, margin, eps, gaap]
//	- name: operational
//	  keywords: [subscribers, churn]
package classify
