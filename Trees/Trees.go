package Trees

// Tree represents an ordered set implemented as a binary search tree.
// Receivers that has a bool as a second return value indicates whether
// the first return value is defined. For example, if calling Minimum on
// an empty tree, the return value will be (x T, false bool). In this
// case the value of x should be the zero value of T and shouldn't be used.
// If an implementation didn't specify anything special, then the implemented
// receivers follows the behaviors defined here. All methods are implemented
// iteratively unless noted otherwise.
type Tree[T any] interface {
	//Insert v to the Tree. Returning true if successful, false if v is already
	//in the Tree, in which case the Tree is unchanged.
	Insert(v T) bool
	//Remove v from the Tree. Returning true if successful, false if v isn't
	//in the Tree, in which case the Tree is unchanged.
	Remove(v T) bool
	//Minimum element of the tree.
	Minimum() (T, bool)
	//Maximum element of the tree.
	Maximum() (T, bool)
	//Predecessor returns the greatest element less than v. v must be in the
	//tree, otherwise there is no predecessor.
	Predecessor(v T) (T, bool)
	//Successor returns the smallest element greater than v. v must be in the
	//tree, otherwise there is no successor.
	Successor(v T) (T, bool)
	//Has element v.
	Has(v T) bool
	//Size of the tree.
	Size() uint
	//InOrder returns a closure function f acting like an iterator. f
	//gives values in the in-order traversal of the tree, together with the
	//balance attribute of the node holding it.
	//Calling f is like calling "Next()" of iterators: val, attr, valid=f()
	//val is meaningful only if valid is true. When valid==false,
	//then f is exhausted. valid can't turn true after it first became false.
	//The tree must not be modified during the iteration of f.
	InOrder() func() (T, uint8, bool)
	//Corrupt returns whether the tree has corrupt structures, when the value
	//or the balance attribute at some node violates the properties of that
	//specific implementation.
	Corrupt() bool
}
