package xivapi

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// CharacterSearch searches the Lodestone for characters by world and name.
// All three name parts are required. Page zero requests the first page.
func (c *Client) CharacterSearch(ctx context.Context, world, forename, surname string, page int) (*SearchPage, error) {
	if forename == "" {
		return nil, newValidationError("forename", "forename is required")
	}
	if surname == "" {
		return nil, newValidationError("surname", "surname is required")
	}

	return c.lodestoneSearch(ctx, "character", world, forename+" "+surname, page)
}

// CharacterByID requests character data by Lodestone ID.
func (c *Client) CharacterByID(ctx context.Context, lodestoneID int64, opts CharacterOptions) (*CharacterResult, error) {
	if lodestoneID <= 0 {
		return nil, newValidationError("lodestone_id", "must be a positive integer")
	}

	lang, err := validateLanguage(opts.Language)
	if err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("language", string(lang))
	if opts.Extended {
		params.Set("extended", "1")
	}
	if data := opts.data(); data != "" {
		params.Set("data", data)
	}

	var result CharacterResult
	if err := c.getJSON(ctx, fmt.Sprintf("/character/%d", lodestoneID), params, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

// FreeCompanySearch searches the Lodestone for free companies by world and name.
func (c *Client) FreeCompanySearch(ctx context.Context, world, name string, page int) (*SearchPage, error) {
	return c.lodestoneSearch(ctx, "freecompany", world, name, page)
}

// FreeCompanyByID requests free company data by Lodestone ID.
func (c *Client) FreeCompanyByID(ctx context.Context, lodestoneID int64, opts FreeCompanyOptions) (*FreeCompanyResult, error) {
	if lodestoneID <= 0 {
		return nil, newValidationError("lodestone_id", "must be a positive integer")
	}

	params := url.Values{}
	if opts.Extended {
		params.Set("extended", "1")
	}
	if opts.IncludeMembers {
		params.Set("data", "FCM")
	}

	var result FreeCompanyResult
	if err := c.getJSON(ctx, fmt.Sprintf("/freecompany/%d", lodestoneID), params, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

// LinkshellSearch searches the Lodestone for linkshells by world and name.
func (c *Client) LinkshellSearch(ctx context.Context, world, name string, page int) (*SearchPage, error) {
	return c.lodestoneSearch(ctx, "linkshell", world, name, page)
}

// LinkshellByID requests linkshell data by Lodestone ID.
func (c *Client) LinkshellByID(ctx context.Context, lodestoneID int64) (*LinkshellResult, error) {
	if lodestoneID <= 0 {
		return nil, newValidationError("lodestone_id", "must be a positive integer")
	}

	var result LinkshellResult
	if err := c.getJSON(ctx, fmt.Sprintf("/linkshell/%d", lodestoneID), nil, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

// PvPTeamSearch searches the Lodestone for PvP teams by world and name.
func (c *Client) PvPTeamSearch(ctx context.Context, world, name string, page int) (*SearchPage, error) {
	return c.lodestoneSearch(ctx, "pvpteam", world, name, page)
}

// PvPTeamByID requests PvP team data by Lodestone ID.
func (c *Client) PvPTeamByID(ctx context.Context, lodestoneID int64) (*PvPTeamResult, error) {
	if lodestoneID <= 0 {
		return nil, newValidationError("lodestone_id", "must be a positive integer")
	}

	var result PvPTeamResult
	if err := c.getJSON(ctx, fmt.Sprintf("/pvpteam/%d", lodestoneID), nil, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

// WorldStatus requests the world status post from the Lodestone.
func (c *Client) WorldStatus(ctx context.Context) ([]Row, error) {
	var worlds []Row
	if err := c.getJSON(ctx, "/lodestone/worldstatus", nil, &worlds); err != nil {
		return nil, err
	}

	return worlds, nil
}

// lodestoneSearch issues a search against one of the Lodestone resource
// endpoints. All of them share the name/server/page parameter shape.
func (c *Client) lodestoneSearch(ctx context.Context, resource, world, name string, page int) (*SearchPage, error) {
	if world == "" {
		return nil, newValidationError("world", "world name is required")
	}
	if strings.TrimSpace(name) == "" {
		return nil, newValidationError("name", "name is required")
	}
	if page < 0 {
		return nil, newValidationError("page", "page must not be negative")
	}

	params := url.Values{}
	params.Set("name", name)
	params.Set("server", world)
	if page > 0 {
		params.Set("page", strconv.Itoa(page))
	}

	var result SearchPage
	if err := c.getJSON(ctx, "/"+resource+"/search", params, &result); err != nil {
		return nil, err
	}

	return &result, nil
}
