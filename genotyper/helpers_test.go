package genotyper

type testRead struct {
	name     string
	rg       string
	hasRG    bool
	reversed bool
}

func (r testRead) Name() string                { return r.name }
func (r testRead) ReadGroupID() (string, bool) { return r.rg, r.hasRG }
func (r testRead) IsReversed() bool            { return r.reversed }

type testHeader map[string]string

func (h testHeader) ReadGroupPlatform(id string) (string, bool) {
	pl, ok := h[id]
	return pl, ok
}

// read groups for each platform, plus some that do not resolve
var header = testHeader{
	"illumina": "ILLUMINA",
	"454":      "LS454",
	"solid":    "SOLiD",
	"pacbio":   "PACBIO",
}

func fwd(rg string) testRead { return testRead{name: "fwd-" + rg, rg: rg, hasRG: true} }
func rev(rg string) testRead { return testRead{name: "rev-" + rg, rg: rg, hasRG: true, reversed: true} }

var platformReadGroups = map[Platform]string{
	Solexa:   "illumina",
	Roche454: "454",
	Solid:    "solid",
}
