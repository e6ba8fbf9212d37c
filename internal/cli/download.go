package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ytget/cm-util/internal/download"
	"github.com/ytget/cm-util/internal/model"
	"github.com/ytget/cm-util/internal/platform"
)

// newService builds the download service from the loaded settings
func (a *app) newService() (*download.Service, error) {
	musicDir, err := platform.GetMusicAutoAddDir()
	if err != nil {
		return nil, err
	}

	videoDir := a.settings.OutputDir
	if videoDir == "" {
		if videoDir, err = platform.GetHomeDownloadsDir(); err != nil {
			return nil, err
		}
	} else if videoDir, err = platform.ExpandHome(videoDir); err != nil {
		return nil, err
	}

	return download.NewService(
		a.deps.Extractor,
		a.history,
		platform.NewMediaMover(),
		download.NewID3Tagger(),
		download.Options{
			StagingRoot: a.paths.Staging,
			Destinations: map[model.MediaType]string{
				model.MediaTypeAudio: musicDir,
				model.MediaTypeVideo: videoDir,
			},
			CookiesBrowser: a.settings.CookiesBrowser,
			ShowProgress:   a.settings.ShowProgress,
		},
	), nil
}

// newRequest applies the retry settings and global flags to a request
func (a *app) newRequest(url string, company model.MediaCompany, mediaType model.MediaType) download.Request {
	req := download.NewRequest(url, company, mediaType)
	req.MaxRetries = a.settings.RetryCount
	req.RetryDelay = a.settings.RetryDelayDuration()
	req.DryRun = a.opts.DryRun
	req.Force = a.opts.Force
	req.OutputDir = a.opts.OutputDir
	return req
}

func (a *app) runDownload(cmd *cobra.Command, req download.Request) error {
	service, err := a.newService()
	if err != nil {
		return err
	}

	task, err := service.Download(cmd.Context(), req)
	if err != nil {
		return err
	}
	a.printTask(task)
	return nil
}

func (a *app) printTask(task *model.DownloadTask) {
	switch task.Status {
	case model.TaskStatusSkipped:
		a.printf("Already downloaded: %s (%s)\n", model.DisplayValue(task.Title), model.DisplayValue(task.Prior.Timestamp))
	case model.TaskStatusCompleted:
		for _, path := range task.OutputPaths {
			a.printf("%s\n", path)
		}
	}
}

func (a *app) songCommand() *cobra.Command {
	var url string
	cmd := &cobra.Command{
		Use:   "dl-song",
		Short: "Download a song from YouTube or SoundCloud as MP3",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := requireFlag("url", url); err != nil {
				return err
			}
			company, err := download.DetectCompany(url)
			if err != nil {
				return err
			}
			return a.runDownload(cmd, a.newRequest(url, company, model.MediaTypeAudio))
		},
	}
	cmd.Flags().StringVarP(&url, "url", "u", "", "YouTube or SoundCloud URL")
	return cmd
}

func (a *app) videoCommand() *cobra.Command {
	var url string
	cmd := &cobra.Command{
		Use:   "dl-video",
		Short: "Download a YouTube video as MP4",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := requireFlag("url", url); err != nil {
				return err
			}
			return a.runDownload(cmd, a.newRequest(url, model.CompanyYouTube, model.MediaTypeVideo))
		},
	}
	cmd.Flags().StringVarP(&url, "url", "u", "", "YouTube video URL")
	return cmd
}

func (a *app) playlistCommand() *cobra.Command {
	var (
		url   string
		video bool
	)
	cmd := &cobra.Command{
		Use:   "dl-playlist",
		Short: "Download every entry of a YouTube playlist",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := requireFlag("url", url); err != nil {
				return err
			}
			url = download.CleanURL(url, model.CompanyYouTube)
			if err := download.ValidateURL(url, model.CompanyYouTube); err != nil {
				return err
			}
			if !download.IsPlaylistURL(url) {
				return model.Validationf("dl-playlist", "URL has no playlist: %s", url)
			}

			mediaType := model.MediaTypeAudio
			if video {
				mediaType = model.MediaTypeVideo
			}

			ctx := cmd.Context()
			playlist, err := a.deps.Playlists.ParsePlaylist(ctx, url)
			if err != nil {
				return err
			}
			a.logger.Info("Found playlist", "title", playlist.Title, "entries", playlist.Len())

			service, err := a.newService()
			if err != nil {
				return err
			}
			err = service.DownloadPlaylist(ctx, playlist, a.newRequest("", model.CompanyYouTube, mediaType))

			a.printf("%s: %d completed, %d skipped, %d failed\n",
				playlist.Title,
				len(playlist.GetCompletedEntries()),
				len(playlist.GetSkippedEntries()),
				len(playlist.GetFailedEntries()),
			)
			return err
		},
	}
	cmd.Flags().StringVarP(&url, "url", "u", "", "YouTube playlist URL")
	cmd.Flags().BoolVar(&video, "video", false, "download videos instead of audio")
	return cmd
}

func (a *app) likesCommand() *cobra.Command {
	var username string
	cmd := &cobra.Command{
		Use:   "dl-sc-user-likes",
		Short: "Download the liked tracks of a SoundCloud user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := requireFlag("username", username); err != nil {
				return err
			}
			url, err := download.SoundCloudLikesURL(username)
			if err != nil {
				return err
			}
			if err := a.runDownload(cmd, a.newRequest(url, model.CompanySoundCloud, model.MediaTypeAudio)); err != nil {
				return fmt.Errorf("download likes of %s: %w", username, err)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&username, "username", "u", "", "SoundCloud username")
	return cmd
}
