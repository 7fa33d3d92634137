//go:build windows

package classify

// removePattern recognizes the deletion verbs cmd.exe and PowerShell
// accept, case-insensitively, with either path separator as a prefix.
const removePattern = `(?i)(^|[;&|()]\s*)(sudo\s+)?(command\s+)?(\\)?(\S*[\\/])?(rm|del|rd|rmdir|remove-item)(\s|$)`

// findGatePattern: there is no find equivalent worth anchoring on, so any
// pipeline is eligible for the destructive check.
const findGatePattern = `\|`

var destructivePatterns = []patternDef{
	{`\|\s*(move|move-item)\b`, "piped to move/move-item"},
}
