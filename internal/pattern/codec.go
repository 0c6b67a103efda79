// internal/pattern/codec.go
//
// Feedback-pattern codec.
//
// Encode maps a (guess, secret) pair to a single integer code in [0, 242]:
// each of the five positions carries one of {miss, misplaced, exact},
// packed base-3 with the leftmost position most significant. Decode is the
// inverse digit expansion.
//
// The two-pass algorithm is the classic duplicate-aware scoring:
//
// Pass 1:
//   - Mark exact matches.
//   - Count remaining (non-exact) secret letters by letter index.
//
// Pass 2:
//   - For each non-exact guess letter, left to right: if there is remaining
//     count for that letter, mark misplaced and decrement; otherwise miss.
//
// The ordering (exacts first, then left-to-right misplaced consumption) is
// load-bearing for words with repeated letters: any other consumption order
// produces different codes. Every consumer of feedback in this repository
// must agree with Encode bit for bit.

package pattern

// WordLen is the fixed word length.
const WordLen = 5

// NumCodes is the size of the code space: 3^WordLen.
const NumCodes = 243

// Mark is the per-letter classification of a guess against a secret.
type Mark uint8

const (
	MarkMiss      Mark = 0 // letter does not appear (or its copies are used up)
	MarkMisplaced Mark = 1 // letter appears elsewhere in the secret
	MarkExact     Mark = 2 // letter is in the correct position
)

// Code is a packed base-3 feedback pattern in [0, NumCodes).
// 243 < 256, so one byte per cell suffices in the dense matrix.
type Code uint8

// Encode scores guess against secret and packs the result.
// Both strings must be WordLen lowercase letters; callers validate upstream
// (Encode and Decode are total over well-formed inputs).
func Encode(guess, secret string) Code {
	var marks [WordLen]Mark

	// Letter frequency for the non-exact secret positions (a-z).
	var counts [26]int

	// First pass: mark exacts and collect counts for remaining secret letters.
	for i := 0; i < WordLen; i++ {
		if guess[i] == secret[i] {
			marks[i] = MarkExact
		} else {
			counts[secret[i]-'a']++
		}
	}

	// Second pass: resolve misplaced/miss for non-exact tiles, left to right.
	for i := 0; i < WordLen; i++ {
		if marks[i] == MarkExact {
			continue
		}
		j := guess[i] - 'a'
		if counts[j] > 0 {
			marks[i] = MarkMisplaced
			counts[j]--
		}
	}
	return Pack(marks)
}

// Pack folds per-position marks into a Code, leftmost position most
// significant.
func Pack(marks [WordLen]Mark) Code {
	c := 0
	for _, m := range marks {
		c = c*3 + int(m)
	}
	return Code(c)
}

// Decode expands a Code back into per-position marks. Inverse of Pack.
func Decode(c Code) [WordLen]Mark {
	v := int(c)
	var marks [WordLen]Mark
	for i := WordLen - 1; i >= 0; i-- {
		marks[i] = Mark(v % 3)
		v /= 3
	}
	return marks
}

// AllExact is the code of a fully correct guess.
const AllExact Code = NumCodes - 1
