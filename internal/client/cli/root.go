package cli

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"
)

func (a *App) getStatus() string {
	if user := a.currentUser(); user != "" {
		return fmt.Sprintf("(%s)", user)
	}
	return ""
}

func (a *App) Root(ctx context.Context) {

	log.Println("Welcome to the taskboard CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Printf("board %s> ", a.getStatus())
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				fmt.Println("Available commands: list, create, cancel, addmember, members, cards, card, addcard, move, history, users, readchat, sendchat, logout, exit")
			} else {
				fmt.Println("Available commands: register, login, exit")
			}

		case "register":
			a.register(ctx)
		case "login":
			a.login(ctx)
		case "logout":
			a.logout(ctx)
		case "create":
			a.createProject(args)
		case "list":
			a.listProjects()
		case "cancel":
			a.cancelProject(args)
		case "addmember":
			a.addMember(args)
		case "members":
			a.showMembers(args)
		case "cards":
			a.showCards(args)
		case "card":
			a.showCard(args)
		case "addcard":
			a.addCard(args)
		case "move":
			a.moveCard(args)
		case "history":
			a.cardHistory(args)
		case "users":
			a.listUsers()
		case "readchat":
			a.readChat(args)
		case "sendchat":
			a.sendChat(args)
		case "exit", "quit":
			fmt.Println("Bye!")
			return
		default:
			fmt.Println("Unknown command:", cmd)
		}
	}

}
