package memory

import (
	"github.com/riskibarqy/fc-tournament/internal/domain/account"
	"github.com/riskibarqy/fc-tournament/internal/domain/team"
)

// SeedTeams is the built-in club catalog, grouped by league in display order.
func SeedTeams() []team.Team {
	return []team.Team{
		{ID: "arsenal", Name: "Arsenal", League: "Premier League", LogoURL: "https://upload.wikimedia.org/wikipedia/en/5/53/Arsenal_FC.svg"},
		{ID: "chelsea", Name: "Chelsea", League: "Premier League", LogoURL: "https://upload.wikimedia.org/wikipedia/en/c/cc/Chelsea_FC.svg"},
		{ID: "liverpool", Name: "Liverpool", League: "Premier League", LogoURL: "https://upload.wikimedia.org/wikipedia/en/0/0c/Liverpool_FC.svg"},
		{ID: "mancity", Name: "Manchester City", League: "Premier League", LogoURL: "https://upload.wikimedia.org/wikipedia/en/e/eb/Manchester_City_FC_badge.svg"},
		{ID: "manutd", Name: "Manchester United", League: "Premier League", LogoURL: "https://upload.wikimedia.org/wikipedia/en/7/7a/Manchester_United_FC_crest.svg"},
		{ID: "tottenham", Name: "Tottenham", League: "Premier League", LogoURL: "https://upload.wikimedia.org/wikipedia/en/b/b4/Tottenham_Hotspur.svg"},
		{ID: "realmadrid", Name: "Real Madrid", League: "La Liga", LogoURL: "https://upload.wikimedia.org/wikipedia/en/5/56/Real_Madrid_CF.svg"},
		{ID: "barcelona", Name: "Barcelona", League: "La Liga", LogoURL: "https://upload.wikimedia.org/wikipedia/en/4/47/FC_Barcelona_%28crest%29.svg"},
		{ID: "atletico", Name: "Atletico Madrid", League: "La Liga", LogoURL: "https://upload.wikimedia.org/wikipedia/en/f/f4/Atletico_Madrid_2017_logo.svg"},
		{ID: "sevilla", Name: "Sevilla", League: "La Liga", LogoURL: "https://upload.wikimedia.org/wikipedia/en/3/3b/Sevilla_FC_logo.svg"},
		{ID: "juventus", Name: "Juventus", League: "Serie A", LogoURL: "https://upload.wikimedia.org/wikipedia/commons/1/15/Juventus_FC_2017_logo.svg"},
		{ID: "milan", Name: "AC Milan", League: "Serie A", LogoURL: "https://upload.wikimedia.org/wikipedia/commons/d/d0/Logo_of_AC_Milan.svg"},
		{ID: "inter", Name: "Inter", League: "Serie A", LogoURL: "https://upload.wikimedia.org/wikipedia/commons/0/05/FC_Internazionale_Milano_2021.svg"},
		{ID: "napoli", Name: "Napoli", League: "Serie A", LogoURL: "https://upload.wikimedia.org/wikipedia/commons/2/2d/SSC_Napoli.svg"},
		{ID: "bayern", Name: "Bayern Munich", League: "Bundesliga", LogoURL: "https://upload.wikimedia.org/wikipedia/commons/1/1f/FC_Bayern_M%C3%BCnchen_logo_%282017%29.svg"},
		{ID: "dortmund", Name: "Borussia Dortmund", League: "Bundesliga", LogoURL: "https://upload.wikimedia.org/wikipedia/commons/6/67/Borussia_Dortmund_logo.svg"},
		{ID: "leverkusen", Name: "Bayer Leverkusen", League: "Bundesliga", LogoURL: "https://upload.wikimedia.org/wikipedia/en/5/59/Bayer_04_Leverkusen_logo.svg"},
		{ID: "leipzig", Name: "RB Leipzig", League: "Bundesliga", LogoURL: "https://upload.wikimedia.org/wikipedia/en/0/04/RB_Leipzig_2014_logo.svg"},
		{ID: "psg", Name: "PSG", League: "Ligue 1", LogoURL: "https://upload.wikimedia.org/wikipedia/en/a/a7/Paris_Saint-Germain_F.C..svg"},
		{ID: "marseille", Name: "Marseille", League: "Ligue 1", LogoURL: "https://upload.wikimedia.org/wikipedia/commons/d/d8/Olympique_Marseille_logo.svg"},
		{ID: "lyon", Name: "Lyon", League: "Ligue 1", LogoURL: "https://upload.wikimedia.org/wikipedia/en/c/c6/Olympique_Lyonnais.svg"},
		{ID: "benfica", Name: "Benfica", League: "Primeira Liga", LogoURL: "https://upload.wikimedia.org/wikipedia/en/a/a2/SL_Benfica_logo.svg"},
		{ID: "porto", Name: "Porto", League: "Primeira Liga", LogoURL: "https://upload.wikimedia.org/wikipedia/en/f/f1/FC_Porto.svg"},
		{ID: "sporting", Name: "Sporting CP", League: "Primeira Liga", LogoURL: "https://upload.wikimedia.org/wikipedia/en/3/3e/Sporting_Clube_de_Portugal.svg"},
		{ID: "ajax", Name: "Ajax", League: "Eredivisie", LogoURL: "https://upload.wikimedia.org/wikipedia/en/7/79/Ajax_Amsterdam.svg"},
		{ID: "psv", Name: "PSV", League: "Eredivisie", LogoURL: "https://upload.wikimedia.org/wikipedia/en/e/e3/PSV_Eindhoven.svg"},
		{ID: "flamengo", Name: "Flamengo", League: "Brasileirao", LogoURL: "https://upload.wikimedia.org/wikipedia/en/9/93/Clube_de_Regatas_do_Flamengo_logo.svg"},
		{ID: "palmeiras", Name: "Palmeiras", League: "Brasileirao", LogoURL: "https://upload.wikimedia.org/wikipedia/en/1/10/Palmeiras_logo.svg"},
		{ID: "bocajuniors", Name: "Boca Juniors", League: "Liga Profesional", LogoURL: "https://upload.wikimedia.org/wikipedia/commons/7/7f/Boca_Juniors_logo18.svg"},
		{ID: "riverplate", Name: "River Plate", League: "Liga Profesional", LogoURL: "https://upload.wikimedia.org/wikipedia/commons/a/ac/Escudo_del_C_A_River_Plate.svg"},
		{ID: "intermiami", Name: "Inter Miami", League: "MLS", LogoURL: "https://upload.wikimedia.org/wikipedia/en/7/78/Inter_Miami_CF_logo.svg"},
		{ID: "lafc", Name: "LAFC", League: "MLS", LogoURL: "https://upload.wikimedia.org/wikipedia/en/a/a6/Los_Angeles_FC_logo.svg"},
	}
}

func SeedAccounts() []account.Account {
	return []account.Account{
		{ID: 1, Username: "sergio", Role: account.RoleUser},
		{ID: 2, Username: "rol", Role: account.RoleUser},
		{ID: 3, Username: "panda", Role: account.RoleUser},
		{ID: 4, Username: "dorbecker", Role: account.RoleUser},
		{ID: 5, Username: "admin", Role: account.RoleAdmin},
	}
}
