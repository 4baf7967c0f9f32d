package commands

type BMSearchCommand struct {
	Search  SearchCommand  `command:"search" description:"Search a file or input from STDIN for one or more patterns"`
	Tables  TablesCommand  `command:"tables" description:"Print the Boyer-Moore tables built for a pattern"`
	Version VersionCommand `command:"version" description:"Displays bmsearch version" alias:"V"`
}

var BMSearch BMSearchCommand
