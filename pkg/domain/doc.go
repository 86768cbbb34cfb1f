/*
Package domain contains the core domain models of the Collage coordinator.

It defines the vocabulary shared between the coordinator, the frames it hosts and
the minigame code that calls into it. This package is kept pure and free of external
dependencies like rendering or input delivery.

# Key Entities

  - Node: An element of a scene tree, with a liveness query.
  - Context: The routing destination of an operation (Global or a specific frame).
  - InputMode: How the pointer is captured in a given scope.
  - InteractionEvent: A slot click annotated with the context it originated from.
  - CoordinatorHooks: Observability callbacks fired by the coordinator.
*/
package domain
