// promptcost — estimate LLM API costs before the call is made.
package main

import "github.com/Manjussha/promptcost/cmd"

func main() {
	cmd.Execute()
}
