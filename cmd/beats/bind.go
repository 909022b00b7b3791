package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-beats/internal/config"
	"github.com/vovakirdan/tui-beats/internal/storage"
)

var (
	flagBindUser   string
	flagBindList   bool
	flagBindDelete bool
)

var bindCmd = &cobra.Command{
	Use:   "bind [keys]",
	Short: "Store lane keys for a player",
	Long: `Save the four lane keys used by 'play', 'menu' and SSH sessions.

Keys are given left to right, either as four characters or separated by
commas or spaces. q, r, tab, enter and esc are reserved.

Examples:
  beats bind dfjk
  beats bind "a,s,l,;"
  beats bind --user alice jkl;     # profile for SSH user alice
  beats bind --list
  beats bind --delete --user alice`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBind,
}

func init() {
	bindCmd.Flags().StringVar(&flagBindUser, "user", "", "Profile owner (default: current user)")
	bindCmd.Flags().BoolVar(&flagBindList, "list", false, "List stored profiles")
	bindCmd.Flags().BoolVar(&flagBindDelete, "delete", false, "Delete the profile")
}

func runBind(_ *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	user := flagBindUser
	if user == "" {
		user = localUser()
	}

	switch {
	case flagBindList:
		return listProfiles(store)

	case flagBindDelete:
		if err := store.DeleteProfile(user); err != nil {
			return err
		}
		fmt.Printf("Deleted profile for %s\n", user)
		return nil

	case len(args) == 0:
		p, err := store.Profile(user)
		if errors.Is(err, storage.ErrNotFound) {
			fmt.Printf("%s has no profile; using %s\n", user, strings.Join(beatsCfg.Keys.Lanes, " "))
			return nil
		}
		if err != nil {
			return err
		}
		fmt.Printf("%s: %s\n", p.User, strings.Join(p.LaneKeys, " "))
		return nil
	}

	keys, err := config.ParseLaneKeys(args[0])
	if err != nil {
		return err
	}
	if err := store.SaveProfile(user, keys); err != nil {
		return err
	}
	logger.Info("profile saved", "user", user, "keys", keys)
	fmt.Printf("Saved %s for %s\n", strings.Join(keys, " "), user)
	return nil
}

func listProfiles(store *storage.Store) error {
	profiles, err := store.Profiles()
	if err != nil {
		return err
	}
	if len(profiles) == 0 {
		fmt.Println("No profiles stored.")
		return nil
	}

	maxUserLen := 4 // "User" header
	for _, p := range profiles {
		maxUserLen = max(maxUserLen, len(p.User))
	}

	fmt.Printf("  %-*s  %-10s  %s\n", maxUserLen, "User", "Keys", "Updated")
	fmt.Printf("  %-*s  %-10s  %s\n", maxUserLen, "----", "----", "-------")
	for _, p := range profiles {
		fmt.Printf("  %-*s  %-10s  %s\n", maxUserLen, p.User,
			strings.Join(p.LaneKeys, " "), p.UpdatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}
