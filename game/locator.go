package game

// PileKind identifies which family of piles a locator points into.
type PileKind int

const (
	StockPile PileKind = iota
	WastePile
	FoundationPile
	TableauPile
)

func (k PileKind) String() string {
	switch k {
	case StockPile:
		return "stock"
	case WastePile:
		return "waste"
	case FoundationPile:
		return "foundation"
	case TableauPile:
		return "tableau"
	}
	return "unknown"
}

// Location addresses one pile. Index is meaningful only for foundations and
// tableau columns.
type Location struct {
	Kind  PileKind
	Index int
}

// HintMove is a transient, non-owning description of one suggested move. It
// never mutates state and is discarded on the next real move, deal, or undo.
type HintMove struct {
	From       Location
	To         Location
	Cards      int // number of cards in the moving run
	WillReveal bool
}
