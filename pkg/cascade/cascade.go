// Package cascade implements the catenative doomsday dice cascader: a prime
// roll decides how many cascaders multiply the sides of the final die.
package cascade

import (
	"crypto/rand"
	"math/big"
)

const (
	PrimeSides   = 6
	InitialSides = 6
)

// RollFunc returns a uniformly random integer in [1, sides].
type RollFunc func(sides *big.Int) *big.Int

// CryptoRoll is the default RollFunc.
func CryptoRoll(sides *big.Int) *big.Int {
	n, err := rand.Int(rand.Reader, sides)
	if err != nil {
		panic(err) // crypto/rand never fails on supported platforms
	}
	return n.Add(n, big.NewInt(1))
}

type Step struct {
	Number     int
	Multiplier *big.Int
	OldSides   *big.Int
	Sides      *big.Int
	// Remaining is the number of dice still left after this step.
	Remaining int
}

// Last reports whether only the final die remains after this step.
func (s Step) Last() bool {
	return s.Remaining == 1
}

type Game struct {
	PrimeRoll int
	Steps     []Step
	Sides     *big.Int
	Result    *big.Int
}

// Play runs a whole cascade up front. Presentation pacing is left to the caller.
func Play(roll RollFunc) Game {
	if roll == nil {
		roll = CryptoRoll
	}
	prime := int(roll(big.NewInt(PrimeSides)).Int64())
	sides := big.NewInt(InitialSides)
	steps := make([]Step, 0, prime-1)
	for i := 1; i < prime; i++ {
		multiplier := roll(sides)
		next := new(big.Int).Mul(sides, multiplier)
		steps = append(steps, Step{
			Number:     i,
			Multiplier: multiplier,
			OldSides:   sides,
			Sides:      next,
			Remaining:  prime - i,
		})
		sides = next
	}
	return Game{
		PrimeRoll: prime,
		Steps:     steps,
		Sides:     sides,
		Result:    roll(sides),
	}
}

// Fumbled reports whether the final die rolled a one.
func (g Game) Fumbled() bool {
	return g.Result.Cmp(big.NewInt(1)) == 0
}
