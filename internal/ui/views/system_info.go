package views

import "github.com/pterm/pterm"

type SystemInfoItem struct {
	ConfigPath      string
	DBDriver        string
	DBPath          string
	DBExists        bool // true = Found, false = Not Found
	DefaultCurrency string
	AppDataDir      string
	InterestRate    string
	MinimumBalance  string
	OverdraftLimit  string
}

func RenderSystemInfo(data SystemInfoItem) error {
	dbStatus := pterm.Green("Found")
	if !data.DBExists {
		dbStatus = pterm.Red("Not Found (Will be created)")
	}

	tableData := pterm.TableData{
		{"Configuration File", data.ConfigPath},
		{"Database Driver", data.DBDriver},
		{"Database Path", data.DBPath},
		{"Database Status", dbStatus},
		{"Default Currency", data.DefaultCurrency},
		{"AppData Directory", data.AppDataDir},
		{"Savings Interest Rate", data.InterestRate},
		{"Savings Minimum Balance", data.MinimumBalance},
		{"Checking Overdraft Limit", data.OverdraftLimit},
	}

	return pterm.DefaultTable.WithData(tableData).Render()
}
