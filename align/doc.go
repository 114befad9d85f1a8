// Package align decides whether a text line is mostly chords or mostly
// lyrics, and pairs the chords of a chord line with the words of the lyric
// line beneath it.
//
// Two alignment paths exist. The positional path works on character
// offsets normalized to [0,1] and handles both left-to-right and
// right-to-left lyric scripts; chord symbols themselves are always written
// left-to-right, which is why right-to-left lyrics need their own matching
// variant. The index path is the fallback for plain-text input where no
// reliable column positions exist.
//
// Both the chord/word assignment here and the line clustering in package
// grid are deliberately simple greedy heuristics ("sort by score, take the
// best first") rather than optimal bipartite matching. The goal is a
// deterministic, reproducible best effort, and the greedy behavior on
// ambiguous spacing is part of the contract.
package align
