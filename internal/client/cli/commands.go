package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
)

func (a *App) register(ctx context.Context) {
	username, err := GetSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		printError(err)
		return
	}
	password, err := GetPassword(os.Stdout)
	if err != nil {
		printError(err)
		return
	}

	message, err := a.notifier.Register(ctx, username, string(password))
	if err != nil {
		printError(err)
		return
	}
	printSuccess("%s\n", message)
}

func (a *App) login(ctx context.Context) {
	if a.isLoggedIn() {
		printWarning("Already logged in as %s\n", a.currentUser())
		return
	}

	username, err := GetSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		printError(err)
		return
	}
	password, err := GetPassword(os.Stdout)
	if err != nil {
		printError(err)
		return
	}

	result, err := a.api.Login(username, string(password))
	if err != nil {
		printError(err)
		return
	}
	if err := a.bootstrap(ctx, username, result); err != nil {
		printWarning("Logged in, but event subscription failed: %v\n", err)
		return
	}
	printSuccess("%s\n", result.Message)
}

func (a *App) logout(ctx context.Context) {
	user := a.currentUser()
	if user == "" {
		printWarning("Not logged in\n")
		return
	}
	if err := a.api.Logout(user); err != nil {
		printError(err)
		return
	}
	a.teardown()
	printSuccess("Logged out\n")
}

func (a *App) createProject(args []string) {
	if len(args) != 1 {
		fmt.Println("Usage: create <project>")
		return
	}
	if err := a.api.CreateProject(args[0]); err != nil {
		printError(err)
		return
	}
	printSuccess("Project %s created\n", args[0])
}

func (a *App) listProjects() {
	projects, err := a.api.ListProjects()
	if err != nil {
		printError(err)
		return
	}
	if len(projects) == 0 {
		fmt.Println("No projects yet")
		return
	}
	for _, name := range projects {
		fmt.Println(name)
	}
}

func (a *App) cancelProject(args []string) {
	if len(args) != 1 {
		fmt.Println("Usage: cancel <project>")
		return
	}
	if err := a.api.CancelProject(args[0]); err != nil {
		printError(err)
		return
	}
	printSuccess("Project %s deleted\n", args[0])
}

func (a *App) addMember(args []string) {
	if len(args) != 2 {
		fmt.Println("Usage: addmember <project> <username>")
		return
	}
	if err := a.api.AddMember(args[0], args[1]); err != nil {
		printError(err)
		return
	}
	printSuccess("Added %s to %s\n", args[1], args[0])
}

func (a *App) showMembers(args []string) {
	if len(args) != 1 {
		fmt.Println("Usage: members <project>")
		return
	}
	members, err := a.api.ShowMembers(args[0])
	if err != nil {
		printError(err)
		return
	}
	for _, member := range members {
		fmt.Println(member)
	}
}

func (a *App) showCards(args []string) {
	if len(args) != 1 {
		fmt.Println("Usage: cards <project>")
		return
	}
	names, err := a.api.ShowCards(args[0])
	if err != nil {
		printError(err)
		return
	}

	rows := make([][]string, 0, len(names))
	for _, name := range names {
		card, err := a.api.ShowCard(args[0], name)
		if err != nil {
			printError(err)
			return
		}
		rows = append(rows, []string{card.Name, card.State, card.Description})
	}
	renderCards(rows)
}

func (a *App) showCard(args []string) {
	if len(args) != 2 {
		fmt.Println("Usage: card <project> <card>")
		return
	}
	card, err := a.api.ShowCard(args[0], args[1])
	if err != nil {
		printError(err)
		return
	}
	renderCards([][]string{{card.Name, card.State, card.Description}})
}

func (a *App) addCard(args []string) {
	if len(args) != 2 {
		fmt.Println("Usage: addcard <project> <card>")
		return
	}
	description, err := GetSimpleText(a.reader, "Enter card description", os.Stdout)
	if err != nil {
		printError(err)
		return
	}
	if err := a.api.AddCard(args[0], args[1], description); err != nil {
		printError(err)
		return
	}
	printSuccess("Card %s added to %s\n", args[1], args[0])
}

func (a *App) moveCard(args []string) {
	if len(args) != 3 {
		fmt.Println("Usage: move <project> <card> <TODO|INPROGRESS|TOBEREVISED|DONE>")
		return
	}
	if err := a.api.MoveCard(args[0], args[1], args[2]); err != nil {
		printError(err)
		return
	}
	printSuccess("Card %s moved to %s\n", args[1], strings.ToUpper(args[2]))
}

func (a *App) cardHistory(args []string) {
	if len(args) != 2 {
		fmt.Println("Usage: history <project> <card>")
		return
	}
	history, err := a.api.CardHistory(args[0], args[1])
	if err != nil {
		printError(err)
		return
	}
	fmt.Println(strings.Join(history, " -> "))
}

func (a *App) listUsers() {
	a.mu.Lock()
	presence := make(map[string]bool, len(a.presence))
	for name, online := range a.presence {
		presence[name] = online
	}
	a.mu.Unlock()

	renderPresence(presence)
}

func (a *App) readChat(args []string) {
	if len(args) != 1 {
		fmt.Println("Usage: readchat <project>")
		return
	}
	messages, err := a.chat.Read(args[0])
	if err != nil {
		printError(err)
		return
	}
	if len(messages) == 0 {
		fmt.Println("No new messages")
		return
	}
	for _, msg := range messages {
		fmt.Println(msg)
	}
}

func (a *App) sendChat(args []string) {
	if len(args) < 2 {
		fmt.Println("Usage: sendchat <project> <message>")
		return
	}
	if err := a.chat.Send(args[0], a.currentUser(), strings.Join(args[1:], " ")); err != nil {
		printError(err)
		return
	}
}
