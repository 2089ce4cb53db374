// Package prompt provides line-oriented interactive prompts.
//
// Prompts read whole lines from an input stream, so they work the same on a
// terminal and with answers piped in. Available prompts:
//   - [Prompter.Select]: numbered list, re-asks until a valid number is given
//   - [Prompter.Ask]: free-text answer
//   - [Prompter.Confirm]: y/N confirmation, defaulting to no
//
// The only way out of a prompt without an answer is the end of input, which
// returns [ErrInputClosed].
package prompt
