//go:build !windows

package classify

// removePattern matches rm as a whole token at the start of a command or
// after a separator, with the prefix variations shells accept: sudo,
// command, a backslash alias escape, or a path to the binary.
const removePattern = `(^|[;&|()]\s*)(sudo\s+)?(command\s+)?(\\)?(\S*/)?rm(\s|$)`

// findGatePattern gates the destructive-find check: the command must invoke
// find at the start or after a separator.
const findGatePattern = `(^|[;&|()]\s*)find\s`

// destructivePatterns are tested in order; the first match wins. All are
// compiled case-insensitively.
var destructivePatterns = []patternDef{
	{`find\s+.*-delete`, "find with -delete option"},
	{`find\s+.*-exec\s+(sudo\s+)?(rm|rmdir)\s`, "find with -exec rm/rmdir"},
	{`find\s+.*-execdir\s+(sudo\s+)?(rm|rmdir)\s`, "find with -execdir rm/rmdir"},
	{`find\s+.*\|\s*(sudo\s+)?xargs\s+(sudo\s+)?(rm|rmdir)`, "find piped to xargs rm/rmdir"},
	{`find\s+.*-exec\s+(sudo\s+)?mv\s`, "find with -exec mv"},
	{`find\s+.*-ok\s+(sudo\s+)?(rm|rmdir)\s`, "find with -ok rm/rmdir"},
}
