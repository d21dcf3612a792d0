package cmd

import (
	"fmt"

	"github.com/abhisek/linguaquest/internal/progression"
	"github.com/abhisek/linguaquest/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learning statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		p := progression.Load(st.ProfileRepo()).Profile()

		fmt.Printf("Name:            %s\n", p.Name)
		if p.SkillLevel != "" {
			fmt.Printf("Skill level:     %s\n", p.SkillLevel)
		}
		fmt.Printf("XP:              %d\n", p.XP)
		fmt.Printf("Hearts:          %d/%d\n", p.Hearts, p.MaxHearts)
		fmt.Printf("Streak:          %d day(s)\n", p.Streak)
		if p.LastPlayDate != "" {
			fmt.Printf("Last played:     %s\n", p.LastPlayDate)
		}
		fmt.Printf("Lessons done:    %d\n", len(p.CompletedLessons))
		fmt.Printf("Themes unlocked: %d\n", len(p.UnlockedThemes))
		if p.SelectedLanguage != "" {
			fmt.Printf("Learning:        %s\n", p.SelectedLanguage)
		}
		return nil
	},
}
