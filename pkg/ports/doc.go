/*
Package ports defines the driven ports (interfaces) consumed by the Collage coordinator.

These interfaces decouple the routing logic from the scene runtime that actually
instantiates, renders and destroys minigames, so the coordinator can be exercised
against the in-memory runtime in tests and against a real engine in production.

# Key Interfaces

  - Frame: An embedded minigame context (a "miniframe") with scoped lifecycle operations.
  - SceneTree: The host's own top-level scene tree, the Global routing target.
  - SceneHost: The lifecycle operations shared by Frame and SceneTree.
*/
package ports
