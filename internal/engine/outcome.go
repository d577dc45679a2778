package engine

import "github.com/donaldgifford/runestone/internal/cst"

// OutcomeKind is the tag of the three-outcome return every rule and driver
// function produces. Modeled as an explicit tagged sum rather than a
// nullable pointer plus sentinel, since a sentinel would conflate "no
// change" with "no node".
type OutcomeKind int

const (
	// Accepted means the subtree's bytes at the entry cursor are final; the
	// cursor has advanced by exactly the node's span.
	Accepted OutcomeKind = iota
	// Replaced means the rule spliced new bytes and returns a replacement
	// node; the cursor is left at its entry position for the caller to
	// rewind.
	Replaced
	// Deleted is reserved and currently unreachable — see DESIGN.md Open
	// Questions. It is modeled here so the type is complete, but the
	// children and root drivers treat it as a hard error.
	Deleted
)

// Outcome is the three-outcome return of format_node! and every rule.
type Outcome struct {
	Kind OutcomeKind
	Node *cst.Node // set only when Kind == Replaced
}

// AcceptedOutcome is the canonical "no change" outcome.
func AcceptedOutcome() Outcome { return Outcome{Kind: Accepted} }

// ReplacedOutcome wraps a replacement node.
func ReplacedOutcome(n *cst.Node) Outcome { return Outcome{Kind: Replaced, Node: n} }

// DeletedOutcome is the reserved outcome.
func DeletedOutcome() Outcome { return Outcome{Kind: Deleted} }
