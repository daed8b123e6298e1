/*
Package domain contains the shared model of the tmsim simulator.

It defines the arithmetic operations the machines implement, the step records
emitted while a machine runs, the results handed back to callers and the
records persisted by stores. This package is kept pure and free of I/O.

# Key Entities

  - Operation: add, mult or exp.
  - Step: a snapshot of one machine state (state name, cursors, tapes).
  - Result: the final tape, the boundary of the result numeral and its decoded value.
  - Record: a Result plus its rendered trace, as written by a ResultStore.
  - LifecycleHooks: callbacks for observing a simulation.
*/
package domain
