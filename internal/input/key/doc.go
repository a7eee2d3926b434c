// Package key defines the internal key representation used by profiles.
//
// A Code is a 32-bit value compatible with the desktop toolkit key codes
// that profiles have always stored:
//
//   - Printable keys use their upper-case ASCII value ("A" is 0x41).
//   - Special keys (Escape, F1, arrows, modifiers) live in the 0x01000000 block.
//   - Right-hand modifiers and keypad keys set CustomKeyPrefix on top of the
//     code of their main-block twin.
//   - Platform key codes that could not be translated set NativeKeyPrefix.
//
// Profiles write keyboard codes in hexadecimal ("0x1000030" for F1).
package key
