package primebag

import "fmt"

// debug utilities

// String renders the bag's scalar state. Element recovery is deliberately
// avoided here: naming values would force a full reconstruction pass.
func (b *Bag[V]) String() string {
	return fmt.Sprintf("primebag{size: %d, encoding: %s}", b.length, b.encoding.String())
}
