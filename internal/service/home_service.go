package service

import (
	"context"
	"study_tracker_backend/internal/repository"
)

const AppName = "Study Tracker"

// NavLink 首页导航到其他视图
type NavLink struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Link        string `json:"link"`
	ButtonText  string `json:"buttonText"`
}

var homeLinks = []NavLink{
	{Title: "Command Center", Description: "Monitor your learning stats and track your progress like a pro gamer", Link: "/dashboard", ButtonText: "ENTER HQ"},
	{Title: "Mission Planner", Description: "Schedule study raids and manage your learning quests with precision", Link: "/calendar", ButtonText: "PLAN RAIDS"},
	{Title: "Error Log", Description: "Document and analyze your mistakes to level up your skills", Link: "/logbook", ButtonText: "VIEW LOGS"},
	{Title: "Skill Trees", Description: "Organize and master different subjects across multiple skill branches", Link: "/subjects", ButtonText: "UNLOCK SKILLS"},
	{Title: "Insights", Description: "Spot trends in your sessions and mistakes over time", Link: "/insights", ButtonText: "VIEW INSIGHTS"},
}

type HomeCounts struct {
	Subjects int `json:"subjects"`
	Sessions int `json:"sessions"`
	Mistakes int `json:"mistakes"`
}

type HomeView struct {
	AppName string     `json:"appName"`
	Links   []NavLink  `json:"links"`
	Counts  HomeCounts `json:"counts"`
}

type HomeService struct {
	Loader *SnapshotLoader
}

func NewHomeService(collections repository.Collections) *HomeService {
	return &HomeService{Loader: NewSnapshotLoader(collections)}
}

func (s *HomeService) View(ctx context.Context) *HomeView {
	snap := s.Loader.Load(ctx, LoadAll)
	links := make([]NavLink, len(homeLinks))
	copy(links, homeLinks)
	return &HomeView{
		AppName: AppName,
		Links:   links,
		Counts: HomeCounts{
			Subjects: len(snap.Subjects),
			Sessions: len(snap.Sessions),
			Mistakes: len(snap.Entries),
		},
	}
}
