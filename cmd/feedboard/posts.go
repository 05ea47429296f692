package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"feedboard/internal/controller"
	"feedboard/internal/listing"
)

var postsCmd = &cobra.Command{
	Use:   "posts",
	Short: "Browse and manage the post feed",
}

var postsListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the feed, optionally filtered and sorted",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp(cmd)
		if err != nil {
			return err
		}
		defer app.Close()

		feed := newFeedController(cmd, app)
		if !feed.Enter(cmd.Context()) {
			return fmt.Errorf("not logged in, run: feedboard login")
		}

		author, _ := cmd.Flags().GetString("author")
		sortKey, _ := cmd.Flags().GetString("sort")
		feed.SetAuthorFilter(author)
		feed.SetSortKey(listing.SortKey(sortKey))

		if msg := feed.ErrorMessage(); msg != "" {
			return fmt.Errorf("%s", msg)
		}

		for _, post := range feed.VisiblePosts() {
			marker := " "
			if listing.IsTrendingPost(post) {
				marker = "*"
			}
			fmt.Printf("%s #%d %q by %s (%d likes, %s)\n",
				marker, post.PostID, post.Title, post.Author.Name,
				post.LikeCount, listing.FormatDate(post.CreatedAt))
			for _, comment := range post.Comments {
				fmt.Printf("      #%d %s: %s\n", comment.CommentID, comment.Author.Name, comment.Content)
			}
		}
		return nil
	},
}

var postsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Publish a new post",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp(cmd)
		if err != nil {
			return err
		}
		defer app.Close()

		feed := newFeedController(cmd, app)
		if !app.sessions.IsLoggedIn(cmd.Context()) {
			return fmt.Errorf("not logged in, run: feedboard login")
		}

		title, _ := cmd.Flags().GetString("title")
		content, _ := cmd.Flags().GetString("content")

		if !feed.CreatePost(cmd.Context(), title, content) {
			if msg := feed.ErrorMessage(); msg != "" {
				return fmt.Errorf("%s", msg)
			}
			return fmt.Errorf("title and content are required")
		}
		fmt.Println("Post created.")
		return nil
	},
}

var postsLikeCmd = &cobra.Command{
	Use:   "like <post-id>",
	Short: "Like a post",
	Args:  cobra.ExactArgs(1),
	RunE:  reactRunE(true),
}

var postsDislikeCmd = &cobra.Command{
	Use:   "dislike <post-id>",
	Short: "Dislike a post",
	Args:  cobra.ExactArgs(1),
	RunE:  reactRunE(false),
}

func reactRunE(isLike bool) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		app, err := newApp(cmd)
		if err != nil {
			return err
		}
		defer app.Close()

		feed := newFeedController(cmd, app)
		if !app.sessions.IsLoggedIn(cmd.Context()) {
			return fmt.Errorf("not logged in, run: feedboard login")
		}

		var postID int64
		if _, err := fmt.Sscanf(args[0], "%d", &postID); err != nil || postID <= 0 {
			return fmt.Errorf("invalid post id %q", args[0])
		}

		var ok bool
		if isLike {
			ok = feed.Like(cmd.Context(), postID)
		} else {
			ok = feed.Dislike(cmd.Context(), postID)
		}
		if !ok {
			return fmt.Errorf("%s", feed.ErrorMessage())
		}
		fmt.Println("Done.")
		return nil
	}
}

func newFeedController(cmd *cobra.Command, app *app) *controller.Feed {
	nav := controller.NavigateFunc(func(route string) {
		app.logger.WithField("route", route).Debug("navigate")
	})
	return controller.NewFeed(app.client, app.sessions, nav, app.logger, app.cfg.Messages.FeedTTL)
}

func init() {
	postsListCmd.Flags().String("author", "", "filter by author name substring")
	postsListCmd.Flags().String("sort", string(listing.SortNewest), "sort key: newest or most-liked")

	postsCreateCmd.Flags().String("title", "", "post title")
	postsCreateCmd.Flags().String("content", "", "post content")

	postsCmd.AddCommand(postsListCmd)
	postsCmd.AddCommand(postsCreateCmd)
	postsCmd.AddCommand(postsLikeCmd)
	postsCmd.AddCommand(postsDislikeCmd)
	rootCmd.AddCommand(postsCmd)
}
