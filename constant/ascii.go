package constant

// AsciiArtLogo is the banner printed above the root command help.
const AsciiArtLogo = `
           _
 _ __ ___ (_)_ __ _   _
| '_ ` + "`" + ` _ \| | '__| | | |
| | | | | | | |  | |_| |
|_| |_| |_|_|_|   \__,_|
`
