package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
)

// Groups lists the locally kept travel groups.
func (a *App) Groups(ctx context.Context) error {
	list, err := a.groups.List(ctx)
	if err != nil {
		fmt.Println("Could not list groups:", err.Error())
		return err
	}

	if len(list) == 0 {
		fmt.Println("No groups yet.")
		return nil
	}
	for _, g := range list {
		fmt.Printf("%s  %s", g.ID, g.Name)
		if len(g.Tags) > 0 {
			fmt.Printf("  [%s]", strings.Join(g.Tags, ", "))
		}
		fmt.Printf("  %d members\n", len(g.Members))
	}
	return nil
}

// AddGroup creates a new local group.
func (a *App) AddGroup(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Group name", os.Stdout)
	if err != nil {
		return err
	}
	tags, err := GetCommaList(a.reader, "Tags", os.Stdout)
	if err != nil {
		return err
	}
	members, err := GetCommaList(a.reader, "Members", os.Stdout)
	if err != nil {
		return err
	}

	var tagList, memberList []string
	if tags != nil {
		tagList = *tags
	}
	if members != nil {
		memberList = *members
	}

	g, err := a.groups.Create(ctx, name, tagList, memberList)
	if err != nil {
		fmt.Println("Could not create group:", err.Error())
		return err
	}

	fmt.Printf("Created group %s (%s).\n", g.Name, g.ID)
	return nil
}

// EditGroup renames, retags, or changes membership of a group.
func (a *App) EditGroup(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Group id", os.Stdout)
	if err != nil {
		return err
	}

	action, err := getSimpleText(a.reader, "Action (rename, tags, add, remove)", os.Stdout)
	if err != nil {
		return err
	}

	switch action {
	case "rename":
		name, err := getSimpleText(a.reader, "New name", os.Stdout)
		if err != nil {
			return err
		}
		if _, err := a.groups.Rename(ctx, id, name); err != nil {
			fmt.Println("Could not rename group:", err.Error())
			return err
		}
	case "tags":
		tags, err := GetCommaList(a.reader, "Tags", os.Stdout)
		if err != nil {
			return err
		}
		var tagList []string
		if tags != nil {
			tagList = *tags
		}
		if _, err := a.groups.SetTags(ctx, id, tagList); err != nil {
			fmt.Println("Could not update tags:", err.Error())
			return err
		}
	case "add":
		member, err := getSimpleText(a.reader, "Member", os.Stdout)
		if err != nil {
			return err
		}
		if _, err := a.groups.AddMember(ctx, id, member); err != nil {
			fmt.Println("Could not add member:", err.Error())
			return err
		}
	case "remove":
		member, err := getSimpleText(a.reader, "Member", os.Stdout)
		if err != nil {
			return err
		}
		if _, err := a.groups.RemoveMember(ctx, id, member); err != nil {
			fmt.Println("Could not remove member:", err.Error())
			return err
		}
	default:
		fmt.Println("Unknown action:", action)
		return nil
	}

	fmt.Println("Group updated.")
	return nil
}

// DeleteGroup removes a local group.
func (a *App) DeleteGroup(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Group id", os.Stdout)
	if err != nil {
		return err
	}

	if err := a.groups.Delete(ctx, id); err != nil {
		fmt.Println("Could not delete group:", err.Error())
		return err
	}

	fmt.Println("Group deleted.")
	return nil
}
