package cmd

import (
	"context"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

var feedCmd = &cobra.Command{
	Use:   "feed",
	Short: "Community feed",
}

var feedListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the latest community posts",
	RunE:  runFeedList,
}

var feedPostCmd = &cobra.Command{
	Use:   "post <text>",
	Short: "Publish a post",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runFeedPost,
}

var feedLikeCmd = &cobra.Command{
	Use:   "like <post id>",
	Short: "Like a post",
	Args:  cobra.ExactArgs(1),
	RunE:  runFeedLike,
}

var feedCommentCmd = &cobra.Command{
	Use:   "comment <post id> <text>",
	Short: "Comment on a post",
	Args:  cobra.MinimumNArgs(2),
	RunE:  runFeedComment,
}

var feedCommentsCmd = &cobra.Command{
	Use:   "comments <post id>",
	Short: "Show a post's comments",
	Args:  cobra.ExactArgs(1),
	RunE:  runFeedComments,
}

func init() {
	rootCmd.AddCommand(feedCmd)
	feedCmd.AddCommand(feedListCmd, feedPostCmd, feedLikeCmd, feedCommentCmd, feedCommentsCmd)

	feedListCmd.Flags().Bool("json", false, "output as JSON")
}

func runFeedList(cmd *cobra.Command, args []string) error {
	if err := guardRoute("/comunidade"); err != nil {
		return err
	}
	printer := newPrinter()

	id, err := currentIdentity()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.API.Timeout)
	defer cancel()

	posts, err := client.ListPosts(ctx, id.ID)
	if err != nil {
		return apiError(err, "loading the feed")
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		return writeJSON(cmd, posts)
	}

	if len(posts) == 0 {
		printer.Info("The feed is empty, be the first to post")
		return nil
	}

	printer.Header("Community Feed")
	for _, p := range posts {
		printer.Print("%s %s  %s", printer.Bold("#"+strconv.FormatInt(p.ID, 10)), printer.Bold(p.AuthorName), printer.Dim(shortDate(p.CreatedAt)))
		printer.Print("  %s", p.Text)
		if len(p.Comments) > 0 {
			printer.Print("  %s", printer.Dim(strconv.Itoa(len(p.Comments))+" comment(s)"))
		}
	}

	printer.PrintHints("feed list")
	return nil
}

func runFeedPost(cmd *cobra.Command, args []string) error {
	if err := guardRoute("/comunidade"); err != nil {
		return err
	}
	printer := newPrinter()

	id, err := currentIdentity()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.API.Timeout)
	defer cancel()

	post, err := client.CreatePost(ctx, id.ID, strings.Join(args, " "))
	if err != nil {
		return apiError(err, "publishing post")
	}

	printer.Success("Posted as #%d", post.ID)
	return nil
}

func runFeedLike(cmd *cobra.Command, args []string) error {
	if err := guardRoute("/comunidade"); err != nil {
		return err
	}
	printer := newPrinter()

	id, err := currentIdentity()
	if err != nil {
		return err
	}
	postID, err := parseID(args[0], "post id")
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.API.Timeout)
	defer cancel()

	if err := client.LikePost(ctx, postID, id.ID); err != nil {
		return apiError(err, "liking post")
	}

	printer.Success("Liked post #%d", postID)
	return nil
}

func runFeedComment(cmd *cobra.Command, args []string) error {
	if err := guardRoute("/comunidade"); err != nil {
		return err
	}
	printer := newPrinter()

	id, err := currentIdentity()
	if err != nil {
		return err
	}
	postID, err := parseID(args[0], "post id")
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.API.Timeout)
	defer cancel()

	if _, err := client.AddComment(ctx, postID, id.ID, strings.Join(args[1:], " ")); err != nil {
		return apiError(err, "commenting")
	}

	printer.Success("Comment added to post #%d", postID)
	return nil
}

func runFeedComments(cmd *cobra.Command, args []string) error {
	if err := guardRoute("/comunidade"); err != nil {
		return err
	}
	printer := newPrinter()

	postID, err := parseID(args[0], "post id")
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.API.Timeout)
	defer cancel()

	comments, err := client.ListComments(ctx, postID)
	if err != nil {
		return apiError(err, "loading comments")
	}

	if len(comments) == 0 {
		printer.Info("No comments yet")
		return nil
	}

	printer.Header("Comments")
	for _, c := range comments {
		printer.Print("%s: %s", printer.Bold(c.AuthorName), c.Text)
	}
	return nil
}
