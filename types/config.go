package types

import (
	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// Config is the process configuration loaded from the toml file.
type Config struct {
	Title string     `toml:"title"`
	DB    *DBConfig  `toml:"db"`
	Dice  *DiceParam `toml:"dice"`
}

// DBConfig selects and locates the storage backend.
type DBConfig struct {
	Driver  string `toml:"driver"`
	DbPath  string `toml:"dbPath"`
	DbCache int32  `toml:"dbCache"`
}

// DiceParam holds the bootstrap identities and the initial game
// parameters used by the initialize command.
type DiceParam struct {
	SuperAdmin         string `toml:"superAdmin"`
	OperationAuthority string `toml:"operationAuthority"`
	FinanceAuthority   string `toml:"financeAuthority"`
	UpdateAuthority    string `toml:"updateAuthority"`
	Rtp                int64  `toml:"rtp"`
	MaxWinAmount       int64  `toml:"maxWinAmount"`
	MinBetAmount       int64  `toml:"minBetAmount"`
	MinNum             int32  `toml:"minNum"`
	MaxNum             int32  `toml:"maxNum"`
}

// InitCfg loads the configuration file and fills backend defaults.
func InitCfg(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, errors.Wrapf(err, "decode config %q", path)
	}
	if cfg.DB == nil {
		cfg.DB = &DBConfig{}
	}
	if cfg.DB.Driver == "" {
		cfg.DB.Driver = "leveldb"
	}
	if cfg.DB.DbPath == "" {
		cfg.DB.DbPath = "datadir"
	}
	if cfg.DB.DbCache == 0 {
		cfg.DB.DbCache = 64
	}
	if cfg.Dice == nil {
		cfg.Dice = &DiceParam{}
	}
	return &cfg, nil
}
