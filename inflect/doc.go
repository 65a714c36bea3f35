// Package inflect converts between human-readable tokens and PascalCase identifiers.
//
// Two functions form the core of the package:
//
//   - [Camelize] turns a snake_case token into a PascalCase identifier:
//     "water_under_bridge" becomes "WaterUnderBridge". Input that is already
//     PascalCase comes back unchanged.
//   - [Tokenize] goes the other way and is more forgiving about its input:
//     spaces, punctuation and camelCase humps all become single underscores,
//     and "&" is spelled out as "and". "Albus Dumbledore & his_friend" becomes
//     "albus_dumbledore_and_his_friend".
//
// [TokenizePtr] and [TokenizeAny] accept optional input and pass nil through
// unchanged rather than treating it as an error.
//
// For snake_case input whose words are at least two letters long the pair
// round-trips: Tokenize(Camelize(s)) == Tokenize(s).
package inflect
