package xivapi

import (
	"context"
)

// API defines the interface for XIVAPI operations
type API interface {
	// CharacterSearch searches the Lodestone for characters by world and name
	CharacterSearch(ctx context.Context, world, forename, surname string, page int) (*SearchPage, error)

	// CharacterByID requests character data by Lodestone ID
	CharacterByID(ctx context.Context, lodestoneID int64, opts CharacterOptions) (*CharacterResult, error)

	// FreeCompanySearch searches the Lodestone for free companies
	FreeCompanySearch(ctx context.Context, world, name string, page int) (*SearchPage, error)

	// FreeCompanyByID requests free company data by Lodestone ID
	FreeCompanyByID(ctx context.Context, lodestoneID int64, opts FreeCompanyOptions) (*FreeCompanyResult, error)

	// LinkshellSearch searches the Lodestone for linkshells
	LinkshellSearch(ctx context.Context, world, name string, page int) (*SearchPage, error)

	// LinkshellByID requests linkshell data by Lodestone ID
	LinkshellByID(ctx context.Context, lodestoneID int64) (*LinkshellResult, error)

	// PvPTeamSearch searches the Lodestone for PvP teams
	PvPTeamSearch(ctx context.Context, world, name string, page int) (*SearchPage, error)

	// PvPTeamByID requests PvP team data by Lodestone ID
	PvPTeamByID(ctx context.Context, lodestoneID int64) (*PvPTeamResult, error)

	// WorldStatus requests the world status post from the Lodestone
	WorldStatus(ctx context.Context) ([]Row, error)

	// IndexSearch searches game-data indexes for records matching name
	IndexSearch(ctx context.Context, name string, indexes []string, opts SearchOptions) (*SearchPage, error)

	// IndexByID requests a single record from a game-data index
	IndexByID(ctx context.Context, index string, contentID int64, opts ContentOptions) (Row, error)

	// LoreSearch searches game text for the query
	LoreSearch(ctx context.Context, query string, language Language) (*SearchPage, error)

	// MarketByWorlds requests market data for an item on the given worlds
	MarketByWorlds(ctx context.Context, itemID int64, worlds []string, opts MarketOptions) (*MarketResult, error)

	// MarketByDatacenter requests market data for an item across a datacenter
	MarketByDatacenter(ctx context.Context, itemID int64, datacenter string, opts MarketOptions) (*MarketResult, error)
}

var _ API = (*Client)(nil)
