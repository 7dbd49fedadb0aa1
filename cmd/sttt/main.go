// Command sttt plays, dumps and scripts a super tic-tac-toe board.
package main

func main() {
	Execute()
}
