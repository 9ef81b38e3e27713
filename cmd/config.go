package cmd

type Config struct {
	HTTPPort       string
	DBHost         string
	DBPort         string
	DBUser         string
	DBPassword     string
	DBName         string
	DBSslMode      string
	RobotSpeed     string
	NavFailureRate string
	NavRetryBudget string
	KitchenDwellMs string
	WaypointsFile  string
}
