// Package sand simulates sand pouring grain by grain into a cave of rock.
//
// Each grain spawns at a fixed source and falls one row per tick, trying
// straight down first, then down-left, then down-right. A grain with all
// three cells blocked comes to rest and becomes an obstacle for every later
// grain.
//
// Two boundary policies decide how a run ends:
//
//   - OpenAbyss: there is nothing below the lowest rock. The run ends when a
//     grain falls past it; that grain is not counted.
//   - ClosedFloor: an endless floor lies two rows below the lowest rock. The
//     run ends when a grain comes to rest on the source itself; that grain
//     is counted.
//
// A sealed cave can plug the source under OpenAbyss too, and the run ends the
// same way.
package sand
