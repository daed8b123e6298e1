/*
Package ports defines the driven ports (interfaces) of the tmsim engine.

These interfaces decouple the simulation core from external implementations,
allowing results to be persisted to the filesystem, Redis or memory.

# Key Interfaces

  - ResultStore: persists and loads simulation records (result plus rendered trace).
  - Simulator: the engine surface consumed by the HTTP and MCP adapters.
*/
package ports
