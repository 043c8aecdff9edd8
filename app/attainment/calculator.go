package attainment

// Calculator runs the attainment pipeline against a Store. It holds no
// state beyond a per-request memo of CO results, so one Calculator is
// built per calculation request and thrown away afterwards. PO attainment
// re-invokes CO attainment once per contributing subject; the memo keeps
// those nested calls cheap without sharing anything across requests.
type Calculator struct {
	store  Store
	cfg    Config
	coMemo map[coMemoKey]*COAttainmentResult
}

type coMemoKey struct {
	subjectID string
	examType  string
}

// New returns a Calculator over the given store and policy config.
func New(store Store, cfg Config) *Calculator {
	return &Calculator{
		store:  store,
		cfg:    cfg,
		coMemo: make(map[coMemoKey]*COAttainmentResult),
	}
}
