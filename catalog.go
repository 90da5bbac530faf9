package legalindex

import "regexp"

// Category names for pattern-derived index buckets.
const (
	CategoryStatutory    = "statutory_references"
	CategoryCaseLaw      = "case_law_references"
	CategorySubdivisions = "subdivisions"
	CategoryKeyPhrases   = "key_phrases"
)

// AllReferences is the synthetic category that unions every occurrence
// recorded for a term across all other categories.
const AllReferences = "all_references"

// Catalog is the static set of recognition rules applied to page text.
// It is immutable at process scope: loaded once and passed explicitly
// into the indexer.
type Catalog struct {
	// Statutory maps a category name to citation patterns for statutes
	// and procedural rules.
	Statutory map[string][]*regexp.Regexp

	// CaseLaw maps a category name to case citation patterns.
	CaseLaw map[string][]*regexp.Regexp

	// General maps a category name to a single structural pattern.
	General map[string]*regexp.Regexp

	// Phrases holds fixed legal phrase patterns, all recorded under the
	// key_phrases category.
	Phrases []*regexp.Regexp
}

// Vocabulary maps a domain category to its canonical term list. Terms are
// matched by case-insensitive word-boundary containment, not as regular
// expressions.
type Vocabulary map[string][]string

var statutoryPatterns = []string{
	`(?:N\.Y\.|New York)\s*[A-Za-z\s]*\s*(?:Law|Code)\s*(?:§|Section)\s*[\d\-\.]+(?:\([a-z0-9\-]+\))?`,
	`CPLR\s*§?\s*[\d\-\.]+(?:\([a-z0-9\-]+\))?`,
	`CPL\s*§?\s*[\d\-\.]+(?:\([a-z0-9\-]+\))?`,
	`Rule\s*[\d\-\.]+(?:\([a-z0-9\-]+\))?`,
	`§\s*[\d\-\.]+(?:\([a-z0-9\-]+\))*`,
}

var caseLawPatterns = []string{
	`[A-Z][a-zA-Z\s&\.\-]{2,30}\s+v\.?\s+[A-Z][a-zA-Z\s&\.\-]{2,30}`,
	`\d{1,3}\s+[A-Z][a-zA-Z0-9\s\.]+\s+\d{1,4}(?:\s+\([A-Za-z\.\s\d]+\))?`,
	`(?:App\.?\s*Div\.?|Ct\.?\s*App\.?|S\.?\s*Ct\.?)`,
}

const subdivisionPattern = `\((?:[a-z]{1,3}|\d{1,3})\)`

var phrasePatterns = []string{
	// Procedural concepts
	`\b(?:burden of proof|standard of review|statute of limitations|res judicata|collateral estoppel)\b`,
	`\b(?:due process|equal protection|probable cause|reasonable suspicion)\b`,
	`\b(?:good faith|bad faith|arm's length|bona fide)\b`,
	`\b(?:summary judgment|directed verdict|judgment as a matter of law|dismissal)\b`,
	`\b(?:motion to dismiss|motion for summary judgment|motion in limine)\b`,

	// Evidence and proof
	`\b(?:preponderance of evidence|clear and convincing|beyond reasonable doubt)\b`,
	`\b(?:hearsay|best evidence rule|authentication|chain of custody)\b`,
	`\b(?:expert testimony|lay opinion|judicial notice)\b`,

	// Duty and liability concepts
	`\b(?:fiduciary duty|duty of care|duty of loyalty|breach of duty)\b`,
	`\b(?:proximate cause|but for causation|substantial factor|foreseeability)\b`,
	`\b(?:strict liability|negligence per se|res ipsa loquitur)\b`,

	// Contract law
	`\b(?:meeting of minds|offer and acceptance|consideration|mutual assent)\b`,
	`\b(?:material breach|anticipatory breach|substantial performance)\b`,
	`\b(?:unconscionable|void|voidable|unenforceable)\b`,

	// Family and matrimonial
	`\b(?:best interests of child|equitable distribution|maintenance|child support)\b`,
	`\b(?:legal custody|physical custody|visitation|parenting time)\b`,

	// Professional responsibility
	`\b(?:attorney-client privilege|work product|conflict of interest)\b`,
	`\b(?:competent representation|zealous advocacy|candor to tribunal)\b`,
}

// DefaultCatalog returns the built-in pattern catalog. The pattern tables
// are static and pre-validated; a pattern that fails to compile is a
// programming error and panics at load.
func DefaultCatalog() *Catalog {
	return &Catalog{
		Statutory: map[string][]*regexp.Regexp{
			CategoryStatutory: compileAll(statutoryPatterns),
		},
		// Case citations compile without the case-insensitive flag: the
		// capital-letter anchors are meaningful, and relaxing them lets
		// leading lowercase words bleed into the matched party names.
		CaseLaw: map[string][]*regexp.Regexp{
			CategoryCaseLaw: compileExact(caseLawPatterns),
		},
		General: map[string]*regexp.Regexp{
			CategorySubdivisions: regexp.MustCompile(`(?i)` + subdivisionPattern),
		},
		Phrases: compileAll(phrasePatterns),
	}
}

func compileAll(patterns []string) []*regexp.Regexp {
	res := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		res = append(res, regexp.MustCompile(`(?i)`+p))
	}
	return res
}

func compileExact(patterns []string) []*regexp.Regexp {
	res := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		res = append(res, regexp.MustCompile(p))
	}
	return res
}

// DefaultVocabulary returns the built-in legal term vocabulary, keyed by
// domain category.
func DefaultVocabulary() Vocabulary {
	return Vocabulary{
		"courts_jurisdiction": {
			"appellate court", "trial court", "supreme court", "family court",
			"surrogate court", "criminal court", "civil court", "district court",
			"court of appeals", "jurisdiction", "venue", "forum non conveniens",
			"personal jurisdiction", "subject matter jurisdiction", "in rem", "quasi in rem",
		},
		"administrative_law": {
			"rulemaking", "adjudication", "judicial review", "administrative agency",
			"due process", "public disclosure", "freedom of information",
			"administrative procedure act", "chevron deference", "arbitrary and capricious",
		},
		"business_entities": {
			"corporation", "limited liability company", "llc", "partnership",
			"limited partnership", "general partnership", "professional service corporation",
			"registered limited liability partnership", "articles of incorporation",
			"bylaws", "board of directors", "shareholders", "members", "managers",
			"piercing corporate veil", "ultra vires", "derivative suit",
		},
		"civil_procedure": {
			"personal jurisdiction", "service of process", "statute of limitations",
			"pleadings", "motion", "discovery", "deposition", "interrogatories",
			"summary judgment", "trial", "appeal", "venue", "affidavit",
			"affirmation", "provisional remedies", "attachment", "preliminary injunction",
			"temporary restraining order", "mandamus", "certiorari", "prohibition",
		},
		"contracts": {
			"consideration", "statute of frauds", "parol evidence rule",
			"unconscionability", "mutual mistake", "unilateral mistake",
			"third-party beneficiary", "constructive trust", "employment contract",
			"breach of contract", "damages", "specific performance", "rescission",
			"reformation", "quantum meruit", "unjust enrichment",
		},
		"criminal_law": {
			"felony", "misdemeanor", "violation", "mens rea", "actus reus",
			"intent", "negligence", "recklessness", "strict liability",
			"affirmative defense", "self-defense", "duress", "entrapment",
			"insanity defense", "juvenile offender", "youthful offender",
			"arraignment", "indictment", "information", "plea bargain",
		},
		"evidence": {
			"relevance", "hearsay", "privilege", "attorney-client privilege",
			"physician-patient privilege", "spousal privilege", "work product",
			"judicial notice", "authentication", "best evidence rule",
			"expert witness", "lay witness", "impeachment", "rehabilitation",
			"character evidence", "habit evidence", "prior bad acts",
		},
		"family_law": {
			"marriage", "divorce", "separation", "annulment", "custody",
			"child support", "spousal support", "maintenance", "alimony",
			"equitable distribution", "marital property", "separate property",
			"adoption", "parentage", "paternity", "visitation", "parenting time",
			"domestic violence", "family offense", "order of protection",
		},
		"professional_responsibility": {
			"attorney-client relationship", "confidentiality", "conflict of interest",
			"retainer agreement", "legal fees", "client funds", "trust account",
			"solicitation", "advertising", "pro bono", "disciplinary proceedings",
			"competent representation", "zealous advocacy", "candor to tribunal",
			"client perjury", "withdrawal from representation",
			"attorney-client privilege",
		},
		"real_property": {
			"landlord", "tenant", "lease", "mortgage", "deed", "title",
			"easement", "covenant", "zoning", "eminent domain",
			"adverse possession", "recording", "chain of title", "encumbrance",
			"fee simple", "life estate", "remainder", "reversion", "servitude",
		},
		"torts": {
			"negligence", "duty of care", "breach of duty", "causation",
			"proximate cause", "damages", "strict liability", "product liability",
			"defamation", "libel", "slander", "privacy", "intentional tort",
			"assault", "battery", "false imprisonment", "no-fault insurance",
			"emotional distress", "invasion of privacy", "nuisance",
		},
		"estates_trusts": {
			"will", "testament", "intestate", "probate", "executor",
			"administrator", "beneficiary", "heir", "devise", "bequest",
			"trust", "trustee", "settlor", "power of attorney",
			"health care proxy", "living will", "estate planning",
			"elective share", "pretermitted heir", "per stirpes", "per capita",
		},
	}
}

// DefaultSynonyms returns the fixed synonym table used to build
// cross-references. A linkage is recorded only when both the canonical
// term and the alternate were independently observed in the document.
func DefaultSynonyms() map[string][]string {
	return map[string][]string{
		"Corporation":               {"Business Corporation", "Corp"},
		"Limited Liability Company": {"LLC", "Limited Liability Co"},
		"Summary Judgment":          {"Summary Judgement"},
		"Statute Of Limitations":    {"Limitations Period", "Time Limitation"},
	}
}
