/*
Package machine implements the tape-rewriting arithmetic machines.

Every machine is built from a handful of local states. A local state inspects
the cell under the cursor, may rewrite it, and answers with a Move: the next
cursor plus a Signal telling the driving loop whether to stay in the state
(Continue) or hand the cursor to the next state (Advance). The driving loop of
each machine decides which state comes next; no state variable is threaded
through the walk.

Composition is by plain nested calls. The Multiplier runs an Adder on its
private addition tape once per unit of the multiplicand, and the Exponentiator
runs a Multiplier on its private multiplication tape once per unit of the
exponent. Subroutines run unobserved and untrimmed: the caller locates their
result through the returned boundary index.
*/
package machine
