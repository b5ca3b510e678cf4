// Package bitmap provides compressed node index sets.
//
// NodeSet wraps a 32-bit Roaring bitmap. Compiled graphs address nodes by
// dense uint32 indices, so a component or reachable set maps directly onto a
// bitmap and iterates back out in ascending index order, which is compile
// order.
//
// # Usage
//
//	set := bitmap.NewNodeSet()
//	set.Add(4)
//	set.Add(1)
//	for id := range set.All() {
//	    // 1, then 4
//	}
package bitmap
