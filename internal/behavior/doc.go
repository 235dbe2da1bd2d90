// Package behavior defines the enemy behavior strategy interface and
// implements the available variants:
//
//   - Aggressive: charges the player and attacks
//   - Defensive: holds position and defends
//   - Passive: stays back and avoids conflict
//
// Strategies are stateless. A single instance can be shared by any number
// of actors.
package behavior
