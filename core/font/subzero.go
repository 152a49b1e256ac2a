package font

import "sync"

// SubZero returns the built-in Sub-Zero font. It is created on first use and
// shared for the lifetime of the process.
func SubZero() *Font {
	subZeroLoading.Do(func() {
		var err error
		subZero, err = New("Sub-Zero", subZeroInfo, subZeroRows, subZeroIndent)
		if err != nil {
			panic("cannot load built-in font: " + err.Error()) // this cannot happen
		}
	})
	return subZero
}

var subZeroLoading sync.Once

var subZero *Font

// Rows 3 and 4 lean to the right by one column.
var subZeroIndent = [Height]int{0, 0, 0, 1, 1}

const subZeroInfo = `-> Conversion to FigLet font by MEPH. (Part of ASCII Editor Service Pack I)
(http://studenten.freepage.de/meph/ascii/ascii/editor/_index.htm)
-> Defined: ASCII code alphabet
-> Uppercase characters only.
ScarecrowsASCIIArtArchive1.0.txt
From: "Sub-Zero" <bodom@papaya.ucs.indiana.edu>
"Here's a font I've been working on lately. Can someone make the V, Q, and X
look better? Also, the B, P, and R could use an improvement too.
Oh, here it is."`

// subZeroRows holds the glyph rows in row-major order: row 0 of A to Z,
// then row 1 of A to Z, and so on.
var subZeroRows = []string{
	// row 0
	` ______  `,    // A
	` ______  `,    // B
	` ______  `,    // C
	` _____   `,    // D
	` ______  `,    // E
	` ______  `,    // F
	` ______  `,    // G
	` __  __  `,    // H
	` __  `,        // I
	`    __  `,     // J
	` __  __  `,    // K
	` __      `,    // L
	` __    __  `,  // M
	` __   __  `,   // N
	` ______  `,    // O
	` ______  `,    // P
	` ______  `,    // Q
	` ______  `,    // R
	` ______  `,    // S
	` ______  `,    // T
	` __  __  `,    // U
	` __   __ `,    // V
	` __     __  `, // W
	` __  __  `,    // X
	` __  __  `,    // Y
	` ______  `,    // Z
	// row 1
	`/\  __ \ `,    // A
	`/\  == \ `,    // B
	`/\  ___\ `,    // C
	`/\  __-. `,    // D
	`/\  ___\ `,    // E
	`/\  ___\ `,    // F
	`/\  ___\ `,    // G
	`/\ \_\ \ `,    // H
	`/\ \ `,        // I
	`   /\ \ `,     // J
	`/\ \/ /  `,    // K
	`/\ \     `,    // L
	`/\ "-./  \ `,  // M
	`/\ "-.\ \ `,   // N
	`/\  __ \ `,    // O
	`/\  == \ `,    // P
	`/\  __ \ `,    // Q
	`/\  == \ `,    // R
	`/\  ___\ `,    // S
	`/\__  _\ `,    // T
	`/\ \/\ \ `,    // U
	`/\ \ / / `,    // V
	`/\ \  _ \ \ `, // W
	`/\_\_\_\ `,    // X
	`/\ \_\ \ `,    // Y
	`/\___  \ `,    // Z
	// row 2
	`\ \  __ \`,    // A
	`\ \  __< `,    // B
	`\ \ \____`,    // C
	`\ \ \/\ \`,    // D
	`\ \  __\ `,    // E
	`\ \  __\ `,    // F
	`\ \ \__ \`,    // G
	`\ \  __ \`,    // H
	`\ \ \`,        // I
	`  _\_\ \`,     // J
	`\ \  _"-.`,    // K
	`\ \ \____`,    // L
	`\ \ \-./\ \`,  // M
	`\ \ \-.  \`,   // N
	`\ \ \/\ \`,    // O
	`\ \  _-/ `,    // P
	`\ \ \/\_\`,    // Q
	`\ \  __< `,    // R
	`\ \___  \`,    // S
	`\/_/\ \/ `,    // T
	`\ \ \_\ \`,    // U
	`\ \ \'/  `,    // V
	`\ \ \/ ".\ \`, // W
	`\/_/\_\/_`,    // X
	`\ \____ \`,    // Y
	`\/_/  /__`,    // Z
	// row 3
	`\ \_\ \_\`,    // A
	`\ \_____\`,    // B
	`\ \_____\`,    // C
	`\ \____- `,    // D
	`\ \_____\`,    // E
	`\ \_\    `,    // F
	`\ \_____\`,    // G
	`\ \_\ \_\`,    // H
	`\ \_\`,        // I
	`/\_____\`,     // J
	`\ \_\ \_\`,    // K
	`\ \_____\`,    // L
	`\ \_\ \ \_\`,  // M
	`\ \_\\"\_\`,   // N
	`\ \_____\`,    // O
	`\ \_\    `,    // P
	`\ \___\_\`,    // Q
	`\ \_\ \_\`,    // R
	`\/\_____\`,    // S
	`  \ \_\  `,    // T
	`\ \_____\`,    // U
	`\ \__|   `,    // V
	`\ \__/".~\_\`, // W
	` /\_\/\_\`,    // X
	`\/\_____\`,    // Y
	` /\_____\`,    // Z
	// row 4
	` \/_/\/_/`,    // A
	` \/_____/`,    // B
	` \/_____/`,    // C
	` \/____/ `,    // D
	` \/_____/`,    // E
	` \/_/    `,    // F
	` \/_____/`,    // G
	` \/_/\/_/`,    // H
	` \/_/`,        // I
	`\/_____/`,     // J
	` \/_/\/_/`,    // K
	` \/_____/`,    // L
	` \/_/  \/_/`,  // M
	` \/_/ \/_/`,   // N
	` \/_____/`,    // O
	` \/_/    `,    // P
	` \/___/_/`,    // Q
	` \/_/ /_/`,    // R
	` \/_____/`,    // S
	`   \/_/  `,    // T
	` \/_____/`,    // U
	` \/_/    `,    // V
	` \/_/   \/_/`, // W
	` \/_/\/_/`,    // X
	` \/_____/`,    // Y
	` \/_____/`,    // Z
}
